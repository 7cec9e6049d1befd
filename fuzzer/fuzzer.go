// Copyright 2024 Fudong and Hosen
// This file is part of the MangleFuzz library.
//
// The MangleFuzz library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The MangleFuzz library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the MangleFuzz library. If not, see <http://www.gnu.org/licenses/>.

// Package fuzzer drives the mutation engine: it picks corpus entries,
// mangles them and hands the results to a caller-supplied execution
// callback. Coverage feedback is the callback's business, not ours.
package fuzzer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"MangleFuzz/config"
	"MangleFuzz/corpus"
	"MangleFuzz/dict"
	"MangleFuzz/mangle"
	"MangleFuzz/utils"
)

// seedSizeCap bounds generated seeds when the corpus is empty; there is
// no point starting from a megabyte of noise.
const seedSizeCap = 4096

// statsEvery is how many iterations pass between stats log lines.
const statsEvery = 10000

// ExecuteFunc runs one candidate input against the target and reports
// whether it was interesting enough to keep.
type ExecuteFunc func(input []byte) bool

// Fuzzer owns one fuzzing session.
type Fuzzer struct {
	// Execute is called for every mangled input. May be nil, in which
	// case inputs are produced and dropped (useful for benchmarks).
	Execute ExecuteFunc

	cfg *config.Config
	log *utils.Logger
	rnd *mangle.Rand
	dct *dict.Dictionary
	in  *corpus.Corpus
	out *corpus.Corpus

	execs uint64
	kept  uint64
}

// New wires a fuzzing session from config: dictionary, input corpus and
// output corpus.
func New(cfg *config.Config, logger *utils.Logger) (*Fuzzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Fuzzer{
		cfg: cfg,
		log: logger,
		rnd: mangle.NewRand(cfg.Fuzzing.Seed),
		in:  corpus.New(cfg.Fuzzing.InputDir, cfg.Mutate.MaxFileSize),
		out: corpus.New(cfg.Fuzzing.OutputDir, cfg.Mutate.MaxFileSize),
	}

	if cfg.Mutate.Dictionary != "" {
		d, err := dict.Load(cfg.Mutate.Dictionary)
		if err != nil {
			return nil, err
		}
		f.dct = d
		f.log.Info("Loaded dictionary with %d entries from %s", d.Len(), cfg.Mutate.Dictionary)
	}

	if cfg.Fuzzing.InputDir != "" {
		if err := f.in.Load(); err != nil {
			return nil, err
		}
		f.log.Info("Loaded %d corpus entries from %s", f.in.Len(), cfg.Fuzzing.InputDir)
	}

	return f, nil
}

// Fuzz runs the configured number of iterations (forever when zero).
func (f *Fuzzer) Fuzz() error {
	iterations := f.cfg.Fuzzing.Iterations
	for i := 0; iterations == 0 || i < iterations; i++ {
		if err := f.fuzzOne(); err != nil {
			return err
		}
		if f.execs%statsEvery == 0 {
			f.log.Info("Stats: execs=%d kept=%d corpus=%d", f.execs, f.kept, f.in.Len())
		}
	}
	return nil
}

func (f *Fuzzer) fuzzOne() error {
	seed := f.in.Choose(f.rnd)
	if seed == nil {
		seed = f.randomSeed()
	}

	run := mangle.NewRun(seed, f.cfg.Mutate.MaxFileSize)
	run.MutationsPerRun = f.cfg.Mutate.MutationsPerRun
	run.OnlyPrintable = f.cfg.Mutate.OnlyPrintable
	run.Dict = f.dct
	run.Rnd = f.rnd

	mangle.MangleContent(run)
	f.execs++

	if f.Execute == nil {
		return nil
	}
	if !f.Execute(run.Input()) {
		return nil
	}

	f.kept++
	fresh, err := f.out.Add(run.Input())
	if err != nil {
		return fmt.Errorf("failed to store interesting input: %w", err)
	}
	if fresh {
		f.log.Debug("Kept input of %d bytes, head %s", run.Size(), hexDump(run.Input()))
	}
	// Interesting inputs also feed back into the seed pool.
	f.in.Add(run.Input())
	return nil
}

// randomSeed generates a starting input when the corpus is empty.
func (f *Fuzzer) randomSeed() []byte {
	maxSz := f.cfg.Mutate.MaxFileSize
	if maxSz > seedSizeCap {
		maxSz = seedSizeCap
	}
	seed := make([]byte, f.rnd.Get(1, uint64(maxSz)))
	if f.cfg.Mutate.OnlyPrintable {
		f.rnd.BufPrintable(seed)
	} else {
		f.rnd.Buf(seed)
	}
	return seed
}

// Execs returns the number of inputs produced so far.
func (f *Fuzzer) Execs() uint64 {
	return f.execs
}

// Kept returns the number of inputs the callback flagged interesting.
func (f *Fuzzer) Kept() uint64 {
	return f.kept
}

func hexDump(data []byte) string {
	if len(data) > 16 {
		data = data[:16]
	}
	return hexutil.Encode(data)
}
