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

// Coprocessor is the coprocessor number of the system control coprocessor.
const Coprocessor = 15

// field widths in the MRC/MCR encoding
const (
	maxOp1 = 0x07
	maxCRn = 0x0f
	maxCRm = 0x0f
	maxOp2 = 0x07
)

// Address is the encoding used by MRC and MCR to select a CP15 register. The
// coprocessor field is implied.
//
// The zero value is a valid address (p15, 0, c0, c0, 0) which is MIDR.
type Address struct {
	op1 uint8
	crn uint8
	crm uint8
	op2 uint8
}

// NewAddress is the preferred method of initialisation for the Address type.
// Returns an InvalidParameter error if any field is too wide for the
// instruction encoding.
func NewAddress(op1, crn, crm, op2 int) (Address, error) {
	if op1 < 0 || op1 > maxOp1 {
		return Address{}, curated.Errorf(InvalidParameter, fmt.Sprintf("op1 of %d is not in range 0 to %d", op1, maxOp1))
	}
	if crn < 0 || crn > maxCRn {
		return Address{}, curated.Errorf(InvalidParameter, fmt.Sprintf("CRn of %d is not in range 0 to %d", crn, maxCRn))
	}
	if crm < 0 || crm > maxCRm {
		return Address{}, curated.Errorf(InvalidParameter, fmt.Sprintf("CRm of %d is not in range 0 to %d", crm, maxCRm))
	}
	if op2 < 0 || op2 > maxOp2 {
		return Address{}, curated.Errorf(InvalidParameter, fmt.Sprintf("op2 of %d is not in range 0 to %d", op2, maxOp2))
	}
	return Address{
		op1: uint8(op1),
		crn: uint8(crn),
		crm: uint8(crm),
		op2: uint8(op2),
	}, nil
}

// addr is used by the register table. a malformed entry in the table is a
// programming error
func addr(op1, crn, crm, op2 int) Address {
	a, err := NewAddress(op1, crn, crm, op2)
	if err != nil {
		panic(err)
	}
	return a
}

// Coproc always returns 15.
func (a Address) Coproc() int {
	return Coprocessor
}

// Op1 returns the Opcode_1 field.
func (a Address) Op1() int {
	return int(a.op1)
}

// CRn returns the primary register number.
func (a Address) CRn() int {
	return int(a.crn)
}

// CRm returns the operational register number.
func (a Address) CRm() int {
	return int(a.crm)
}

// Op2 returns the Opcode_2 field.
func (a Address) Op2() int {
	return int(a.op2)
}

// Key packs the address into 14 bits. Ordering by key is the same as ordering
// by op1, CRn, CRm and then op2.
func (a Address) Key() uint16 {
	return uint16(a.op1)<<11 | uint16(a.crn)<<7 | uint16(a.crm)<<3 | uint16(a.op2)
}

// String returns the address as it would appear in an assembler operand list,
// without the <Rt> operand.
func (a Address) String() string {
	return fmt.Sprintf("p%d, %d, c%d, c%d, %d", Coprocessor, a.op1, a.crn, a.crm, a.op2)
}
