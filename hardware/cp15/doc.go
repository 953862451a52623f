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

// Package cp15 names the registers of the ARMv7-A system control coprocessor.
//
// CP15 registers are accessed with the MRC and MCR instructions:
//
//	MRC p15, <Op1>, <Rt>, <CRn>, <CRm>, <Op2> ; read CP15 register
//	MCR p15, <Op1>, <Rt>, <CRn>, <CRm>, <Op2> ; write CP15 register
//
// The Address type is the five field tuple that identifies a register. The
// coprocessor field is always 15. An Address can only be created by
// NewAddress(), which checks that each field fits the width of the instruction
// encoding, so a malformed tuple cannot exist.
//
// Each register (or maintenance operation) is described by a Descriptor. The
// descriptors are exported as package level values, named as they are in
// "ARM Architecture Reference Manual, ARMv7-A and ARMv7-R edition" (ARM DDI
// 0406C) and "Cortex-A5 MPCore Technical Reference Manual" (ARM DDI 0434B):
//
//	cp15.SCTLR.Address()          // p15, 0, c1, c0, 0
//	cp15.SCTLR.Bind(cp15.R0)      // the same address with an operand slot
//
// Registers that repeat across an index are generated by a family. Families
// check the index before returning a descriptor:
//
//	cp15.V2POWPR(2)               // p15, 0, c7, c8, 6
//	cp15.TLBIALL(cp15.DataTLB)    // p15, 0, c8, c6, 0
//	cp15.V2POWPR(4)               // error: cp15.InvalidParameter
//
// Descriptors are grouped by function (see the Group type). InGroup() returns
// every descriptor in a group, including the members of the families.
//
// Some registers are only present when an optional extension is implemented.
// The Core type describes which extensions a processor has. Core.Check()
// returns an UnsupportedRegister error if the processor cannot have the
// register.
//
// Ordering between register accesses is the caller's responsibility. For
// example, CSSELR must be written (followed by an ISB) before CCSIDR is read,
// and cache and TLB maintenance operations must be followed by a DSB. These
// requirements are recorded in the Selector and Note fields of the Descriptor
// but nothing in the package enforces them.
//
// Everything in the package is an immutable value. All functions are safe to
// call from any number of goroutines.
package cp15
