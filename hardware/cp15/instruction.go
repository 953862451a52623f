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

	"github.com/jetsetilly/cp15/curated"
)

// Direction of a register transfer.
type Direction int

// List of valid Direction values.
const (
	// read the CP15 register into the general purpose register
	MRC Direction = iota

	// write the general purpose register to the CP15 register
	MCR
)

func (d Direction) String() string {
	if d == MCR {
		return "mcr"
	}
	return "mrc"
}

// Condition is the condition code field of an ARM instruction.
type Condition uint8

// List of valid Condition values. The value 0b1111 is not a condition, it
// selects the MRC2/MCR2 encoding.
const (
	EQ Condition = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
)

var conditionNames = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", ""}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return "nv"
}

// ConditionByName returns the condition with the specified mnemonic. An empty
// string or "al" is the always condition.
func ConditionByName(s string) (Condition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "al" {
		return AL, nil
	}
	for i, n := range conditionNames {
		if n == s {
			return Condition(i), nil
		}
	}
	return AL, curated.Errorf(InvalidParameter, fmt.Sprintf("%s is not a condition code", s))
}

// bit patterns of the register transfer instructions. "A8.8.108 MRC, MRC2"
// and "A8.8.98 MCR, MCR2" of ARM DDI 0406C.
//
//	A1: cond:4 | 1110 | opc1:3 | L | CRn:4 | Rt:4 | coproc:4 | opc2:3 | 1 | CRm:4
//	T1: 1110 | 1110 | opc1:3 | L | CRn:4 || Rt:4 | coproc:4 | opc2:3 | 1 | CRm:4
const (
	armTransferMask  = 0x0f000010
	armTransferValue = 0x0e000010
	armLoad          = 0x00100000

	thumbTransferMask  = 0xff00
	thumbTransferValue = 0xee00
	thumbLoad          = 0x0010
	thumbFixedBit      = 0x0010
)

func (t Transfer) check() error {
	if !t.Rt.Valid() {
		return curated.Errorf(InvalidParameter, fmt.Sprintf("%s cannot be the operand of a CP15 transfer", t.Rt))
	}
	return nil
}

// low halfword is the same for both the ARM and Thumb encodings
func (t Transfer) operandBits() uint32 {
	return uint32(t.Rt)<<12 | Coprocessor<<8 | uint32(t.addr.op2)<<5 | 0x10 | uint32(t.addr.crm)
}

// EncodeARM returns the A1 encoding of the MRC or MCR instruction for the
// transfer. Returns an InvalidParameter error if the operand or the condition
// cannot be encoded.
func (t Transfer) EncodeARM(dir Direction, cond Condition) (uint32, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	if cond > AL {
		return 0, curated.Errorf(InvalidParameter, fmt.Sprintf("condition %#x selects the MRC2/MCR2 encoding", uint8(cond)))
	}

	w := uint32(cond)<<28 | armTransferValue | uint32(t.addr.op1)<<21 | uint32(t.addr.crn)<<16 | t.operandBits()
	if dir == MRC {
		w |= armLoad
	}
	return w, nil
}

// EncodeThumb returns the two halfwords of the T1 encoding of the MRC or MCR
// instruction for the transfer. The first halfword is the one at the lower
// address.
func (t Transfer) EncodeThumb(dir Direction) (uint16, uint16, error) {
	if err := t.check(); err != nil {
		return 0, 0, err
	}

	hw1 := uint16(thumbTransferValue) | uint16(t.addr.op1)<<5 | uint16(t.addr.crn)
	if dir == MRC {
		hw1 |= thumbLoad
	}
	return hw1, uint16(t.operandBits()), nil
}

// Assembly returns the instruction in GNU assembler syntax.
func (t Transfer) Assembly(dir Direction, cond Condition) string {
	return fmt.Sprintf("%s%s %s", dir, cond, t)
}

// Instruction is the result of decoding an MRC or MCR instruction.
type Instruction struct {
	Direction Direction
	Condition Condition
	Rt        Register
	Address   Address

	// every descriptor with the address. empty if the address is not a
	// recognised register. more than one entry if the address is aliased
	Descriptors []Descriptor
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s%s p%d, %d, %s, c%d, c%d, %d", ins.Direction, ins.Condition, Coprocessor,
		ins.Address.op1, ins.Rt, ins.Address.crn, ins.Address.crm, ins.Address.op2)
}

// Names returns the names of the descriptors joined with a forward slash.
func (ins Instruction) Names() string {
	n := make([]string, len(ins.Descriptors))
	for i, d := range ins.Descriptors {
		n[i] = d.Name
	}
	return strings.Join(n, "/")
}

func decode(dir Direction, cond Condition, op1, crn, rt, coproc, op2, crm uint32) (Instruction, error) {
	if coproc != Coprocessor {
		return Instruction{}, curated.Errorf(InvalidParameter, fmt.Sprintf("instruction is for coprocessor p%d", coproc))
	}

	ins := Instruction{
		Direction: dir,
		Condition: cond,
		Rt:        Register(rt),
	}
	if !ins.Rt.Valid() {
		return Instruction{}, curated.Errorf(InvalidParameter, fmt.Sprintf("%s cannot be the operand of a CP15 transfer", ins.Rt))
	}

	var err error
	ins.Address, err = NewAddress(int(op1), int(crn), int(crm), int(op2))
	if err != nil {
		return Instruction{}, err
	}
	ins.Descriptors = ByAddress(ins.Address)

	return ins, nil
}

// DecodeARM decodes an A1 encoded MRC or MCR instruction. Returns an
// InvalidParameter error if the word is not a CP15 register transfer.
func DecodeARM(w uint32) (Instruction, error) {
	cond := Condition(w >> 28)
	if cond > AL || w&armTransferMask != armTransferValue {
		return Instruction{}, curated.Errorf(InvalidParameter, fmt.Sprintf("%#08x is not an MRC or MCR instruction", w))
	}

	dir := MCR
	if w&armLoad == armLoad {
		dir = MRC
	}

	return decode(dir, cond, (w>>21)&0x07, (w>>16)&0x0f, (w>>12)&0x0f, (w>>8)&0x0f, (w>>5)&0x07, w&0x0f)
}

// DecodeThumb decodes a T1 encoded MRC or MCR instruction. Returns an
// InvalidParameter error if the halfwords are not a CP15 register transfer.
func DecodeThumb(hw1, hw2 uint16) (Instruction, error) {
	if hw1&thumbTransferMask != thumbTransferValue || hw2&thumbFixedBit != thumbFixedBit {
		return Instruction{}, curated.Errorf(InvalidParameter, fmt.Sprintf("%04x %04x is not an MRC or MCR instruction", hw1, hw2))
	}

	dir := MCR
	if hw1&thumbLoad == thumbLoad {
		dir = MRC
	}

	a := uint32(hw1)
	b := uint32(hw2)
	return decode(dir, AL, (a>>5)&0x07, a&0x0f, (b>>12)&0x0f, (b>>8)&0x0f, (b>>5)&0x07, b&0x0f)
}
