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
	"github.com/sirupsen/logrus"
)

// Log receives debug traces from the tree, such as rejected calls.  It logs at
// logrus.WarnLevel by default, which keeps the tree silent; raise it with
// Log.SetLevel(logrus.DebugLevel) while troubleshooting.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// reject logs a caller error and hands it back.
func (t *Tree[T]) reject(op string, err error) error {
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op":  op,
			"len": t.length,
		}).WithError(err).Debug("rejected call")
	}
	return err
}
