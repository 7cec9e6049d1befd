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

package fuzzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MangleFuzz/config"
	"MangleFuzz/utils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Mutate.MaxFileSize = 256
	cfg.Fuzzing.Seed = 1
	cfg.Fuzzing.Iterations = 200
	cfg.Log.Directory = t.TempDir()
	return cfg
}

func testLogger(t *testing.T, cfg *config.Config) *utils.Logger {
	t.Helper()
	logger, err := utils.NewLogger(cfg.Log.Directory, "error")
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger
}

// TestFuzz tests the basic produce-execute-keep loop
func TestFuzz(t *testing.T) {
	cfg := testConfig(t)
	f, err := New(cfg, testLogger(t, cfg))
	require.NoError(t, err)

	var execs int
	f.Execute = func(input []byte) bool {
		require.GreaterOrEqual(t, len(input), 1)
		require.LessOrEqual(t, len(input), cfg.Mutate.MaxFileSize)
		execs++
		return false
	}

	require.NoError(t, f.Fuzz())
	assert.Equal(t, 200, execs)
	assert.Equal(t, uint64(200), f.Execs())
	assert.Equal(t, uint64(0), f.Kept())
}

// TestFuzz_KeepsInterestingInputs tests output-corpus persistence
func TestFuzz_KeepsInterestingInputs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fuzzing.Iterations = 50
	cfg.Fuzzing.OutputDir = t.TempDir()

	f, err := New(cfg, testLogger(t, cfg))
	require.NoError(t, err)
	f.Execute = func(input []byte) bool { return true }

	require.NoError(t, f.Fuzz())
	assert.Equal(t, uint64(50), f.Kept())

	files, err := os.ReadDir(cfg.Fuzzing.OutputDir)
	require.NoError(t, err)
	assert.Greater(t, len(files), 0, "interesting inputs must be written out")
}

// TestFuzz_SeedsFromCorpus tests that an input directory is used
func TestFuzz_SeedsFromCorpus(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fuzzing.Iterations = 10
	cfg.Fuzzing.InputDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Fuzzing.InputDir, "seed"), []byte("hello"), 0644))

	f, err := New(cfg, testLogger(t, cfg))
	require.NoError(t, err)
	require.NoError(t, f.Fuzz())
	assert.Equal(t, uint64(10), f.Execs())
}

// TestFuzz_PrintableMode tests that every produced input is printable
func TestFuzz_PrintableMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mutate.OnlyPrintable = true
	cfg.Fuzzing.Iterations = 500

	f, err := New(cfg, testLogger(t, cfg))
	require.NoError(t, err)
	f.Execute = func(input []byte) bool {
		for _, b := range input {
			if b < 0x20 || b > 0x7E {
				t.Fatalf("non-printable byte %#x in produced input", b)
			}
		}
		return false
	}
	require.NoError(t, f.Fuzz())
}

// TestFuzz_WithDictionary tests dictionary wiring
func TestFuzz_WithDictionary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fuzzing.Iterations = 50
	cfg.Mutate.Dictionary = filepath.Join(t.TempDir(), "tokens.dict")
	require.NoError(t, os.WriteFile(cfg.Mutate.Dictionary, []byte("a=\"MAGIC\"\n"), 0644))

	f, err := New(cfg, testLogger(t, cfg))
	require.NoError(t, err)
	require.Equal(t, 1, f.dct.Len())
	require.NoError(t, f.Fuzz())
}

// TestNew_BadDictionary tests dictionary load failure
func TestNew_BadDictionary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mutate.Dictionary = filepath.Join(t.TempDir(), "missing.dict")
	_, err := New(cfg, testLogger(t, cfg))
	require.Error(t, err)
}

// TestNew_InvalidConfig tests config validation at construction
func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mutate.MaxFileSize = 0
	_, err := New(cfg, testLogger(t, cfg))
	require.Error(t, err)
}
