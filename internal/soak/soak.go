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

// Package soak drives an llrb.Tree through long random operation sequences,
// checking it against github.com/petar/GoLLRB after every step.
package soak

import (
	"fmt"
	"math/rand"

	gollrb "github.com/petar/GoLLRB/llrb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/google/llrb"
)

// Config holds the parameters of a soak run.
type Config struct {
	// Ops is the number of random operations to perform.
	Ops int
	// Keys bounds the key space to [0, Keys); a small space means many
	// overwrites and hits.
	Keys int
	// Seed seeds the operation generator.
	Seed int64
	// CheckEvery runs a full Verify and content comparison every so many
	// operations.  Zero disables the periodic check; the final one always runs.
	CheckEvery int
	// OnProgress is called after each operation with the number done so far
	// and the total.
	OnProgress func(done, total int)
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Ops:        100000,
		Keys:       1000,
		Seed:       1,
		CheckEvery: 1,
	}
}

// AddFlags binds the fields of c to flags in fs.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Ops, "ops", "n", c.Ops, "Number of random operations to run.")
	fs.IntVarP(&c.Keys, "keys", "k", c.Keys, "Size of the key space; keys are drawn from [0, keys).")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the operation generator.")
	fs.IntVar(&c.CheckEvery, "check-every", c.CheckEvery,
		"Verify the tree invariants and compare contents every N operations (0 = only at the end).")
}

// Validate reports a configuration that cannot be run.
func (c Config) Validate() error {
	if c.Ops < 0 {
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.Keys <= 0 {
		return errors.Errorf("keys must be positive, got %d", c.Keys)
	}
	if c.CheckEvery < 0 {
		return errors.Errorf("check-every must not be negative, got %d", c.CheckEvery)
	}
	return nil
}

// Op is one kind of tree operation.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpDeleteMin
	OpDeleteMax
	OpHas
	numOps
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpDeleteMin:
		return "delete-min"
	case OpDeleteMax:
		return "delete-max"
	case OpHas:
		return "has"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// weights of each Op, indexed by Op.  Inserts slightly outweigh removals so
// the tree grows towards the key space size and then hovers there.
var weights = [numOps]int{
	OpInsert:    9,
	OpDelete:    5,
	OpDeleteMin: 1,
	OpDeleteMax: 1,
	OpHas:       4,
}

func pick(r *rand.Rand) Op {
	total := 0
	for _, w := range weights {
		total += w
	}
	x := r.Intn(total)
	for op, w := range weights {
		if x < w {
			return Op(op)
		}
		x -= w
	}
	panic("unreachable")
}

// Stats counts what a run did.
type Stats struct {
	Counts [numOps]int
	Checks int
	MaxLen int
	// MaxHeight is the tallest the tree grew during the run.
	MaxHeight int
}

// Fields renders s for structured logging.
func (s Stats) Fields() logrus.Fields {
	f := logrus.Fields{
		"checks":     s.Checks,
		"max_len":    s.MaxLen,
		"max_height": s.MaxHeight,
	}
	for op, n := range s.Counts {
		f[Op(op).String()] = n
	}
	return f
}

// Runner applies operations to an llrb.Tree and a GoLLRB oracle in lockstep.
type Runner struct {
	cfg    Config
	rand   *rand.Rand
	tree   *llrb.Tree[int]
	oracle *gollrb.LLRB
	log    logrus.FieldLogger
	stats  Stats
}

// NewRunner creates a Runner over empty trees.
func NewRunner(cfg Config, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid soak config")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		cfg:    cfg,
		rand:   rand.New(rand.NewSource(cfg.Seed)),
		tree:   llrb.NewOrdered[int](),
		oracle: gollrb.New(),
		log:    log,
	}, nil
}

// Run performs the configured number of operations and returns the first
// divergence between the two trees, or an invariant violation.
func (r *Runner) Run() (Stats, error) {
	for i := 1; i <= r.cfg.Ops; i++ {
		op := pick(r.rand)
		key := r.rand.Intn(r.cfg.Keys)
		if err := r.Step(op, key); err != nil {
			return r.stats, errors.Wrapf(err, "operation %d (%v %d)", i, op, key)
		}
		if r.cfg.CheckEvery > 0 && i%r.cfg.CheckEvery == 0 {
			if err := r.Check(); err != nil {
				return r.stats, errors.Wrapf(err, "after operation %d (%v %d)", i, op, key)
			}
		}
		if r.cfg.OnProgress != nil {
			r.cfg.OnProgress(i, r.cfg.Ops)
		}
	}
	if err := r.Check(); err != nil {
		return r.stats, errors.Wrap(err, "final check")
	}
	return r.stats, nil
}

// Step applies one operation to both trees and compares the outcome.
func (r *Runner) Step(op Op, key int) error {
	if op < 0 || op >= numOps {
		return errors.Errorf("unknown operation %v", op)
	}
	r.stats.Counts[op]++
	switch op {
	case OpInsert:
		if err := r.tree.Insert(key); err != nil {
			return err
		}
		r.oracle.ReplaceOrInsert(gollrb.Int(key))
	case OpDelete:
		got, ok, err := r.tree.Delete(key)
		if err != nil {
			return err
		}
		want := r.oracle.Delete(gollrb.Int(key))
		if err := compareRemoved(got, ok, want); err != nil {
			return err
		}
	case OpDeleteMin, OpDeleteMax:
		var got int
		var err error
		var want gollrb.Item
		if op == OpDeleteMin {
			got, err = r.tree.DeleteMin()
			want = r.oracle.DeleteMin()
		} else {
			got, err = r.tree.DeleteMax()
			want = r.oracle.DeleteMax()
		}
		if errors.Cause(err) == llrb.ErrEmptyCollection {
			if want != nil {
				return errors.Errorf("tree reported empty, reference removed %v", want)
			}
			break
		} else if err != nil {
			return err
		}
		if err := compareRemoved(got, true, want); err != nil {
			return err
		}
	case OpHas:
		if got, want := r.tree.Has(key), r.oracle.Has(gollrb.Int(key)); got != want {
			return errors.Errorf("has %d: got %v, reference has %v", key, got, want)
		}
	}
	if got, want := r.tree.Len(), r.oracle.Len(); got != want {
		return errors.Errorf("len %d, reference len %d", got, want)
	}
	if n := r.tree.Len(); n > r.stats.MaxLen {
		r.stats.MaxLen = n
	}
	return nil
}

func compareRemoved(got int, ok bool, want gollrb.Item) error {
	switch {
	case !ok && want == nil:
		return nil
	case !ok:
		return errors.Errorf("removed nothing, reference removed %v", want)
	case want == nil:
		return errors.Errorf("removed %d, reference removed nothing", got)
	case gollrb.Int(got) != want.(gollrb.Int):
		return errors.Errorf("removed %d, reference removed %v", got, want)
	}
	return nil
}

// Check verifies the tree invariants and compares the full contents of both
// trees.
func (r *Runner) Check() error {
	r.stats.Checks++
	if err := r.tree.Verify(); err != nil {
		return err
	}
	h := r.tree.Height()
	if h > r.stats.MaxHeight {
		r.stats.MaxHeight = h
	}
	var got, want []int
	r.tree.Ascend(func(item int) bool {
		got = append(got, item)
		return true
	})
	if first := r.oracle.Min(); first != nil {
		r.oracle.AscendGreaterOrEqual(first, func(item gollrb.Item) bool {
			want = append(want, int(item.(gollrb.Int)))
			return true
		})
	}
	if len(got) != len(want) {
		return errors.Errorf("tree holds %d items, reference holds %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return errors.Errorf("item %d is %d, reference has %d", i, got[i], want[i])
		}
	}
	r.log.WithFields(logrus.Fields{
		"len":    len(got),
		"height": h,
	}).Debug("check passed")
	return nil
}

// Run is a convenience wrapper around NewRunner and Runner.Run.
func Run(cfg Config, log logrus.FieldLogger) (Stats, error) {
	r, err := NewRunner(cfg, log)
	if err != nil {
		return Stats{}, err
	}
	return r.Run()
}
