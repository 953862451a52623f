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

const noteContextChange = "execute ISB after writing before relying on the change"

// System control and configuration. c1.
var (
	SCTLR = define(Descriptor{Name: "SCTLR", Description: "System Control Register", Group: SystemControl, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 1, 0, 0)})
	ACTLR = define(Descriptor{Name: "ACTLR", Description: "Auxiliary Control Register", Group: SystemControl, Access: ReadWrite, addr: addr(0, 1, 0, 1)})
	CPACR = define(Descriptor{Name: "CPACR", Description: "Coprocessor Access Control Register", Group: SystemControl, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 1, 0, 2)})

	SCR   = define(Descriptor{Name: "SCR", Description: "Secure Configuration Register", Group: SystemControl, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 1, 1, 0)})
	SDER  = define(Descriptor{Name: "SDER", Description: "Secure Debug Enable Register", Group: SystemControl, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 1, 1, 1)})
	NSACR = define(Descriptor{Name: "NSACR", Description: "Non-secure Access Control Register", Group: SystemControl, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 1, 1, 2)})
	VCR   = define(Descriptor{Name: "VCR", Description: "Virtualization Control Register", Group: SystemControl, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 1, 1, 3)})
)

// Translation table base and control. c2 and c3.
var (
	TTBR0 = define(Descriptor{Name: "TTBR0", Description: "Translation Table Base Register 0", Group: TranslationTable, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 2, 0, 0)})
	TTBR1 = define(Descriptor{Name: "TTBR1", Description: "Translation Table Base Register 1", Group: TranslationTable, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 2, 0, 1)})
	TTBCR = define(Descriptor{Name: "TTBCR", Description: "Translation Table Base Control Register", Group: TranslationTable, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 2, 0, 2)})
	DACR  = define(Descriptor{Name: "DACR", Description: "Domain Access Control Register", Group: TranslationTable, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 3, 0, 0)})
)

// Fault status and fault address. c5 and c6.
var (
	DFSR  = define(Descriptor{Name: "DFSR", Description: "Data Fault Status Register", Group: Fault, Access: ReadWrite, addr: addr(0, 5, 0, 0)})
	IFSR  = define(Descriptor{Name: "IFSR", Description: "Instruction Fault Status Register", Group: Fault, Access: ReadWrite, addr: addr(0, 5, 0, 1)})
	ADFSR = define(Descriptor{Name: "ADFSR", Description: "Auxiliary Data Fault Status Register", Group: Fault, Access: ReadWrite, addr: addr(0, 5, 1, 0)})
	AIFSR = define(Descriptor{Name: "AIFSR", Description: "Auxiliary Instruction Fault Status Register", Group: Fault, Access: ReadWrite, addr: addr(0, 5, 1, 1)})
	DFAR  = define(Descriptor{Name: "DFAR", Description: "Data Fault Address Register", Group: Fault, Access: ReadWrite, addr: addr(0, 6, 0, 0)})
	IFAR  = define(Descriptor{Name: "IFAR", Description: "Instruction Fault Address Register", Group: Fault, Access: ReadWrite, addr: addr(0, 6, 0, 2)})
)

// Memory region remap. c10.
var (
	PRRR = define(Descriptor{Name: "PRRR", Description: "Primary Region Remap Register", Group: MemoryRemap, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 10, 2, 0)})
	NMRR = define(Descriptor{Name: "NMRR", Description: "Normal Memory Remap Register", Group: MemoryRemap, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 10, 2, 1)})
)

// Vector base addresses and interrupt status. c12.
var (
	VBAR  = define(Descriptor{Name: "VBAR", Description: "Vector Base Address Register", Group: VectorBase, Access: ReadWrite, addr: addr(0, 12, 0, 0)})
	MVBAR = define(Descriptor{Name: "MVBAR", Description: "Monitor Vector Base Address Register", Group: VectorBase, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 12, 0, 1)})
	ISR   = define(Descriptor{Name: "ISR", Description: "Interrupt Status Register", Group: VectorBase, Access: ReadOnly, Requires: SecurityExtensions, addr: addr(0, 12, 1, 0)})
	VIR   = define(Descriptor{Name: "VIR", Description: "Virtualization Interrupt Register", Group: VectorBase, Access: ReadWrite, Requires: SecurityExtensions, addr: addr(0, 12, 1, 1)})
)

// Context and thread IDs. c13.
var (
	FCSEIDR    = define(Descriptor{Name: "FCSEIDR", Description: "FCSE Process ID Register", Group: ContextID, Access: ReadWrite, Requires: FCSE, addr: addr(0, 13, 0, 0)})
	CONTEXTIDR = define(Descriptor{Name: "CONTEXTIDR", Description: "Context ID Register", Group: ContextID, Access: ReadWrite, Note: noteContextChange, addr: addr(0, 13, 0, 1)})

	// the three software thread ID registers differ in what user mode can do
	// with them. all three are read-write from privileged modes
	TPIDRURW = define(Descriptor{Name: "TPIDRURW", Description: "User Read/Write Thread ID Register", Group: ContextID, Access: ReadWrite, UserAccess: ReadWrite, addr: addr(0, 13, 0, 2)})
	TPIDRURO = define(Descriptor{Name: "TPIDRURO", Description: "User Read-Only Thread ID Register", Group: ContextID, Access: ReadWrite, UserAccess: ReadOnly, addr: addr(0, 13, 0, 3)})
	TPIDRPRW = define(Descriptor{Name: "TPIDRPRW", Description: "PL1 only Thread ID Register", Group: ContextID, Access: ReadWrite, addr: addr(0, 13, 0, 4)})
)
