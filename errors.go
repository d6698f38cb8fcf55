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

package llrb

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a required argument is absent: a nil
	// item passed to Insert or Delete, or a nil Visitor.
	ErrInvalidArgument = errors.New("llrb: invalid argument")
	// ErrEmptyCollection is returned by DeleteMin and DeleteMax on an empty tree.
	ErrEmptyCollection = errors.New("llrb: empty collection")
	// ErrCorrupt is returned by Verify when the tree breaks one of its invariants.
	ErrCorrupt = errors.New("llrb: invariant violated")
)

func invalidArgument(op, what string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s", op, what)
}

func invalidArgumentf(op, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, op+": "+format, args...)
}

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupt, format, args...)
}

func (t *Tree[T]) emptyErr(op string) (_ T, err error) {
	err = t.reject(op, errors.Wrap(ErrEmptyCollection, op))
	return
}
