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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/cp15/terminal/easyterm/ansi"
)

// Colorizer applies basic colouring rules to logging output. Entries that
// report an error are written with the red pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// the detail of an entry that reports an error will contain one of these
// strings. the strings come from the curated error patterns of the cp15
// package
var errorMarkers = []string{
	"invalid parameter",
	"unsupported register",
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var n int

	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		pen := ""
		for _, m := range errorMarkers {
			if strings.Contains(l, m) {
				pen = ansi.DimPens["red"]
				break
			}
		}

		if pen == "" {
			m, err := io.WriteString(c.out, l)
			n += m
			if err != nil {
				return n, err
			}
			continue
		}

		// the pen and the reset sequence are not counted in the number of
		// bytes written
		_, err := io.WriteString(c.out, pen)
		if err != nil {
			return n, err
		}
		m, err := io.WriteString(c.out, strings.TrimSuffix(l, "\n"))
		n += m
		if err != nil {
			return n, err
		}
		_, err = io.WriteString(c.out, ansi.NormalPen)
		if err != nil {
			return n, err
		}
		if strings.HasSuffix(l, "\n") {
			m, err = io.WriteString(c.out, "\n")
			n += m
			if err != nil {
				return n, err
			}
		}
	}

	return n, nil
}
