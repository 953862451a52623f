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

package cp15

import (
	"fmt"

	"github.com/jetsetilly/cp15/curated"
)

// Primitive issues MRC and MCR instructions. On hardware it is implemented in
// assembly and is only usable from a privileged mode. The emulation package
// provides an implementation for use on a host.
//
// Implementations are responsible for serialising access to the registers.
type Primitive interface {
	Read(Address) uint32
	Write(Address, uint32)
}

// Synchroniser is implemented by a Primitive that can issue an ISB
// instruction. Accessor.Select() uses it between the selector write and the
// read of the selected register.
type Synchroniser interface {
	ISB()
}

// Accessor reads and writes registers through a Primitive after checking that
// the core implements the register and that the access is allowed.
//
// Ordering requirements (see Descriptor.Selector and Descriptor.Note) are not
// checked.
type Accessor struct {
	core Core
	prim Primitive
}

// NewAccessor is the preferred method of initialisation for the Accessor
// type.
func NewAccessor(core Core, prim Primitive) *Accessor {
	return &Accessor{
		core: core,
		prim: prim,
	}
}

// Core returns the core used by the accessor.
func (acc *Accessor) Core() Core {
	return acc.core
}

// Read the register. Returns an UnsupportedRegister error if the core does not
// implement the register and an InvalidParameter error if the register cannot
// be read.
func (acc *Accessor) Read(d Descriptor) (uint32, error) {
	if err := acc.core.Check(d); err != nil {
		return 0, err
	}
	if !d.Access.Readable() {
		return 0, curated.Errorf(InvalidParameter, fmt.Sprintf("%s cannot be read (%s)", d.Name, d.Access))
	}
	return acc.prim.Read(d.addr), nil
}

// Write the value to the register. For operations, the value is the operand
// of the operation. Returns an UnsupportedRegister error if the core does not
// implement the register and an InvalidParameter error if the register cannot
// be written.
func (acc *Accessor) Write(d Descriptor, v uint32) error {
	if err := acc.core.Check(d); err != nil {
		return err
	}
	if !d.Access.Writable() {
		return curated.Errorf(InvalidParameter, fmt.Sprintf("%s cannot be written (%s)", d.Name, d.Access))
	}
	acc.prim.Write(d.addr, v)
	return nil
}

// Select writes the selector value to the register named in the Selector
// field of the descriptor and then reads the descriptor. For example, reading
// CCSIDR for the level 1 data cache:
//
//	acc.Select(cp15.CCSIDR, 0)
//
// If the Primitive implements the Synchroniser interface then an ISB is
// issued between the two accesses. Otherwise the caller is responsible for the
// ordering requirement.
func (acc *Accessor) Select(d Descriptor, selector uint32) (uint32, error) {
	if d.Selector == "" {
		return 0, curated.Errorf(InvalidParameter, fmt.Sprintf("%s does not have a selector", d.Name))
	}
	s, ok := ByName(d.Selector)
	if !ok {
		return 0, curated.Errorf(UnsupportedRegister, fmt.Sprintf("%s is not recognised", d.Selector))
	}
	if err := acc.Write(s, selector); err != nil {
		return 0, err
	}
	if sync, ok := acc.prim.(Synchroniser); ok {
		sync.ISB()
	}
	return acc.Read(d)
}
