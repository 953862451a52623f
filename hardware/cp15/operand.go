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
	"strconv"
	"strings"

	"github.com/jetsetilly/cp15/curated"
)

// Register is a general purpose register used as the <Rt> operand of an MRC
// or MCR instruction. It is where the value read from or written to the CP15
// register is staged. It is not part of the register address.
type Register uint8

// List of valid Register values. R15 (the PC) is not a legal operand for
// register transfers to or from CP15.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
)

// the program counter. only used to recognise illegal operands
const pc Register = 15

// Valid returns false if the register cannot be used as an operand.
func (r Register) Valid() bool {
	return r < pc
}

func (r Register) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case pc:
		return "pc"
	}
	return fmt.Sprintf("r%d", r)
}

// RegisterByName returns the register with the specified name. Accepted forms
// are r0 to r14, sp and lr, or a plain number. The comparison is not case
// sensitive. The PC is rejected with an InvalidParameter error.
func RegisterByName(s string) (Register, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "sp":
		return SP, nil
	case "lr":
		return LR, nil
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(s, "r"), 10, 8)
	if err != nil || !Register(n).Valid() {
		return 0, curated.Errorf(InvalidParameter, fmt.Sprintf("%s is not a transfer register", s))
	}
	return Register(n), nil
}
