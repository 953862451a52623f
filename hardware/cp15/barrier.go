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
	"encoding/binary"
	"fmt"

	"golang.org/x/arch/arm/armasm"
)

// BarrierInstruction is the dedicated ARMv7 instruction that performs the
// same function as one of the CP15 barrier operations.
type BarrierInstruction struct {
	// A1 encoding with the full system (SY) option
	Word uint32
}

// "A8.8.43 DMB", "A8.8.44 DSB" and "A8.8.53 ISB" of ARM DDI 0406C
var barrierInstructions = map[Address]BarrierInstruction{
	CP15ISB.addr: {Word: 0xf57ff06f},
	CP15DSB.addr: {Word: 0xf57ff04f},
	CP15DMB.addr: {Word: 0xf57ff05f},
}

// BarrierInstruction returns the dedicated instruction equivalent to the
// descriptor. The boolean is false if the descriptor is not a barrier
// operation.
func (d Descriptor) BarrierInstruction() (BarrierInstruction, bool) {
	if d.Group != Barrier {
		return BarrierInstruction{}, false
	}
	b, ok := barrierInstructions[d.addr]
	return b, ok
}

// Decode the instruction word with the ARM disassembler.
func (b BarrierInstruction) Decode() (armasm.Inst, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], b.Word)
	return armasm.Decode(buf[:], armasm.ModeARM)
}

func (b BarrierInstruction) String() string {
	inst, err := b.Decode()
	if err != nil {
		return fmt.Sprintf("%#08x", b.Word)
	}
	return armasm.GNUSyntax(inst)
}
