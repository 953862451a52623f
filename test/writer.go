// This file is part of cp15.
//
// cp15 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cp15 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cp15.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"strings"
	"sync"
)

// Writer is an io.Writer that captures output for later comparison. It is
// safe to write to from more than one goroutine.
type Writer struct {
	crit   sync.Mutex
	buffer strings.Builder
}

func (w *Writer) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.buffer.Write(p)
}

// Clear empties the captured output.
func (w *Writer) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer.Reset()
}

// Compare captured output with an expected string.
func (w *Writer) Compare(s string) bool {
	return w.String() == s
}

// Lines returns the captured output split into lines. A trailing newline does
// not produce an empty final line.
func (w *Writer) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *Writer) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.buffer.String()
}
