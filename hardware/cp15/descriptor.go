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
	"strings"
)

// Access describes how a register can be used.
type Access int

// List of valid Access values.
const (
	NoAccess Access = iota
	ReadOnly
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	case ReadWrite:
		return "RW"
	}
	return "--"
}

// Readable returns true if the access allows an MRC.
func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite
}

// Writable returns true if the access allows an MCR.
func (a Access) Writable() bool {
	return a == WriteOnly || a == ReadWrite
}

// Descriptor binds a register name to its address.
type Descriptor struct {
	// the name as used in the architecture reference manual
	Name        string
	Description string
	Group       Group

	// access from PL1 (privileged) and PL0 (user) modes. UserAccess is
	// NoAccess for most registers
	Access     Access
	UserAccess Access

	// optional features that must be implemented for the register to be
	// present
	Requires Feature

	// the register that must be written before this register can be
	// meaningfully accessed. empty if there is no such requirement
	Selector string

	// the name of another register that has the same address. an alias is
	// never accidental
	AliasOf string

	// ordering or barrier requirements that the caller must satisfy
	Note string

	addr Address
}

// Address returns the register address.
func (d Descriptor) Address() Address {
	return d.addr
}

// IsOperation returns true if the descriptor names an operation rather than
// storage. Writing any value to an operation causes it to happen.
func (d Descriptor) IsOperation() bool {
	return d.Access == WriteOnly
}

// Bind the descriptor to an operand slot.
func (d Descriptor) Bind(rt Register) Transfer {
	return Transfer{
		Descriptor: d,
		Rt:         rt,
	}
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%-10s %s", d.Name, d.addr)
}

// Summary returns a single line describing the descriptor in detail.
func (d Descriptor) Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%s] %s %s", d.Name, d.addr, d.Access, d.Description))
	if d.Requires != Mandatory {
		s.WriteString(fmt.Sprintf(" (requires %s)", d.Requires))
	}
	if d.Selector != "" {
		s.WriteString(fmt.Sprintf(" (selected by %s)", d.Selector))
	}
	if d.AliasOf != "" {
		s.WriteString(fmt.Sprintf(" (alias of %s)", d.AliasOf))
	}
	return s.String()
}

// Transfer is a descriptor bound to the general purpose register that is the
// source or destination of the transfer.
type Transfer struct {
	Descriptor
	Rt Register
}

func (t Transfer) String() string {
	return fmt.Sprintf("p%d, %d, %s, c%d, c%d, %d", Coprocessor, t.addr.op1, t.Rt, t.addr.crn, t.addr.crm, t.addr.op2)
}
