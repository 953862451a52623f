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

package cp15_test

import (
	"testing"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/test"
)

// a primitive that records every access
type recorder struct {
	values map[cp15.Address]uint32
	reads  int
	writes int
}

func newRecorder() *recorder {
	return &recorder{values: make(map[cp15.Address]uint32)}
}

func (r *recorder) Read(a cp15.Address) uint32 {
	r.reads++
	return r.values[a]
}

func (r *recorder) Write(a cp15.Address, v uint32) {
	r.writes++
	r.values[a] = v
}

func TestAccessor(t *testing.T) {
	r := newRecorder()
	r.values[cp15.MIDR.Address()] = 0x410fc090
	acc := cp15.NewAccessor(cp15.CortexA9, r)
	test.ExpectEquality(t, acc.Core(), cp15.CortexA9)

	v, err := acc.Read(cp15.MIDR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x410fc090))

	test.ExpectSuccess(t, acc.Write(cp15.TTBR0, 0x80004000))
	test.ExpectEquality(t, r.values[cp15.TTBR0.Address()], uint32(0x80004000))

	test.ExpectEquality(t, r.reads, 1)
	test.ExpectEquality(t, r.writes, 1)
}

func TestAccessorDirection(t *testing.T) {
	r := newRecorder()
	acc := cp15.NewAccessor(cp15.CortexA9, r)

	_, err := acc.Read(cp15.ICIALLU)
	test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter))

	err = acc.Write(cp15.MIDR, 0)
	test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter))

	// the primitive is never used for an illegal access
	test.ExpectEquality(t, r.reads, 0)
	test.ExpectEquality(t, r.writes, 0)
}

func TestAccessorUnsupported(t *testing.T) {
	r := newRecorder()
	acc := cp15.NewAccessor(cp15.ARMv7A, r)

	_, err := acc.Read(cp15.MVBAR)
	test.ExpectSuccess(t, curated.Is(err, cp15.UnsupportedRegister))

	err = acc.Write(cp15.PMCR, 1)
	test.ExpectSuccess(t, curated.Is(err, cp15.UnsupportedRegister))

	test.ExpectEquality(t, r.reads, 0)
	test.ExpectEquality(t, r.writes, 0)
}

func TestAccessorSelect(t *testing.T) {
	r := newRecorder()
	acc := cp15.NewAccessor(cp15.CortexA9, r)

	_, err := acc.Select(cp15.CCSIDR, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.values[cp15.CSSELR.Address()], uint32(2))
	test.ExpectEquality(t, r.writes, 1)
	test.ExpectEquality(t, r.reads, 1)

	_, err = acc.Select(cp15.SCTLR, 0)
	test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter))

	// the selected register is not implemented by the core
	acc = cp15.NewAccessor(cp15.ARMv7A, r)
	_, err = acc.Select(cp15.PMXEVCNTR, 0)
	test.ExpectSuccess(t, curated.Is(err, cp15.UnsupportedRegister))
}
