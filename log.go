// Copyright 2014 Google Inc.
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

package btree

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is the default logger; it never formats anything since its
// level stays below Debug.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// tracing reports whether structural events should be logged. Callers check
// it before building fields so the hot path does not allocate.
func (t *BTreeG[T]) tracing() bool {
	return t.log.IsLevelEnabled(logrus.DebugLevel)
}

func (t *BTreeG[T]) trace(op string, fields logrus.Fields) {
	fields["op"] = op
	fields["capacity"] = t.capacity.String()
	t.log.WithFields(fields).Debug(op)
}
