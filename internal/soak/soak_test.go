// Copyright 2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soak

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRun(t *testing.T) {
	for _, keys := range []int{1, 7, 100, 5000} {
		cfg := DefaultConfig()
		cfg.Ops = 5000
		cfg.Keys = keys
		cfg.Seed = int64(keys)
		stats, err := Run(cfg, quietLogger())
		require.NoError(t, err, "keys=%d", keys)
		assert.Equal(t, 5001, stats.Checks)
		total := 0
		for _, n := range stats.Counts {
			total += n
		}
		assert.Equal(t, 5000, total)
		assert.LessOrEqual(t, stats.MaxLen, keys)
	}
}

func TestRunProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ops = 200
	cfg.CheckEvery = 0
	var calls, last int
	cfg.OnProgress = func(done, total int) {
		calls++
		last = done
		assert.Equal(t, 200, total)
	}
	stats, err := Run(cfg, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 200, calls)
	assert.Equal(t, 200, last)
	assert.Equal(t, 1, stats.Checks, "only the final check runs")
}

func TestStepEmptyRemovals(t *testing.T) {
	r, err := NewRunner(DefaultConfig(), quietLogger())
	require.NoError(t, err)
	require.NoError(t, r.Step(OpDeleteMin, 0))
	require.NoError(t, r.Step(OpDeleteMax, 0))
	require.NoError(t, r.Step(OpDelete, 3))
	require.NoError(t, r.Step(OpInsert, 3))
	require.NoError(t, r.Step(OpHas, 3))
	require.NoError(t, r.Step(OpDeleteMax, 0))
	require.NoError(t, r.Check())
	assert.Zero(t, r.tree.Len())
}

func TestCheckDetectsDivergence(t *testing.T) {
	r, err := NewRunner(DefaultConfig(), quietLogger())
	require.NoError(t, err)
	require.NoError(t, r.Step(OpInsert, 1))
	// Change one side behind the runner's back.
	require.NoError(t, r.tree.Insert(2))
	assert.Error(t, r.Check())
	assert.Error(t, r.Step(OpHas, 2))
}

func TestStepUnknownOp(t *testing.T) {
	r, err := NewRunner(DefaultConfig(), quietLogger())
	require.NoError(t, err)
	for _, op := range []Op{Op(42), Op(-1), numOps} {
		assert.Error(t, r.Step(op, 1), "%v", op)
	}
	assert.Equal(t, [numOps]int{}, r.stats.Counts)
	assert.Zero(t, r.tree.Len())
}

func TestValidate(t *testing.T) {
	for _, cfg := range []Config{
		{Ops: -1, Keys: 1},
		{Ops: 1, Keys: 0},
		{Ops: 1, Keys: 1, CheckEvery: -1},
	} {
		_, err := Run(cfg, quietLogger())
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestAddFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("soak", pflag.ContinueOnError)
	cfg.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"-n", "10", "--keys=3", "--seed", "9", "--check-every", "0"}))
	assert.Equal(t, 10, cfg.Ops)
	assert.Equal(t, 3, cfg.Keys)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Zero(t, cfg.CheckEvery)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "delete-min", OpDeleteMin.String())
	assert.Equal(t, "Op(42)", Op(42).String())
	assert.Contains(t, Stats{}.Fields(), "insert")
}
