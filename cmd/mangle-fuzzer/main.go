package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"MangleFuzz/config"
	"MangleFuzz/fuzzer"
	"MangleFuzz/utils"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the YAML configuration file",
	}
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Corpus directory to draw seeds from",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Directory interesting inputs are written to",
	}
	dictFlag = &cli.StringFlag{
		Name:  "dict",
		Usage: "AFL-style dictionary file",
	}
	maxFileSizeFlag = &cli.IntFlag{
		Name:  "max-file-size",
		Usage: "Hard ceiling on input size in bytes",
	}
	mutationsFlag = &cli.IntFlag{
		Name:  "mutations",
		Usage: "Max stacked mutations per input",
	}
	printableFlag = &cli.BoolFlag{
		Name:  "printable",
		Usage: "Keep mutated bytes in printable ASCII",
	}
	iterationsFlag = &cli.IntFlag{
		Name:    "iterations",
		Aliases: []string{"n"},
		Usage:   "Number of inputs to produce (0 = forever)",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed (0 = current time)",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Terminal log verbosity",
		Value: int(slog.LevelInfo),
	}
	app = initApp()
)

func initApp() *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = "Coverage-fuzzer input mangler"
	app.Flags = []cli.Flag{
		configFlag,
		inputFlag,
		outputFlag,
		dictFlag,
		maxFileSizeFlag,
		mutationsFlag,
		printableFlag,
		iterationsFlag,
		seedFlag,
		verbosityFlag,
	}
	app.Action = startFuzzer
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startFuzzer(ctx *cli.Context) error {
	loglevel := slog.Level(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, loglevel, true)))

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.Log.Directory, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	f, err := fuzzer.New(cfg, logger)
	if err != nil {
		return err
	}
	// Without an execution harness attached, every produced input is
	// kept so the tool is usable as a standalone test-case generator.
	f.Execute = func(input []byte) bool { return true }

	log.Info("Starting fuzzer", "iterations", cfg.Fuzzing.Iterations,
		"maxFileSize", cfg.Mutate.MaxFileSize, "printable", cfg.Mutate.OnlyPrintable)
	if err := f.Fuzz(); err != nil {
		return err
	}
	log.Info("Done", "execs", f.Execs(), "kept", f.Kept())
	return nil
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.IsSet(inputFlag.Name) {
		cfg.Fuzzing.InputDir = ctx.String(inputFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		cfg.Fuzzing.OutputDir = ctx.String(outputFlag.Name)
	}
	if ctx.IsSet(dictFlag.Name) {
		cfg.Mutate.Dictionary = ctx.String(dictFlag.Name)
	}
	if ctx.IsSet(maxFileSizeFlag.Name) {
		cfg.Mutate.MaxFileSize = ctx.Int(maxFileSizeFlag.Name)
	}
	if ctx.IsSet(mutationsFlag.Name) {
		cfg.Mutate.MutationsPerRun = ctx.Int(mutationsFlag.Name)
	}
	if ctx.IsSet(printableFlag.Name) {
		cfg.Mutate.OnlyPrintable = ctx.Bool(printableFlag.Name)
	}
	if ctx.IsSet(iterationsFlag.Name) {
		cfg.Fuzzing.Iterations = ctx.Int(iterationsFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg.Fuzzing.Seed = ctx.Int64(seedFlag.Name)
	}

	return cfg, cfg.Validate()
}
