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

// Implementation defined registers. c15. "4.3.25 c15 registers" of ARM DDI
// 0434B.
//
// A tag or data read operation copies the selected cache or TLB entry into
// DR0 and DR1. The operand of the operation selects the entry.
var (
	DR0 = define(Descriptor{Name: "DR0", Description: "Data Register 0", Group: Diagnostic, Access: ReadWrite, Requires: CortexA5Diagnostics, Note: "populated by DTAGR, ITAGR, DDATAR, IDATAR or TLBR", addr: addr(3, 15, 0, 0)})
	DR1 = define(Descriptor{Name: "DR1", Description: "Data Register 1", Group: Diagnostic, Access: ReadWrite, Requires: CortexA5Diagnostics, Note: "populated by DTAGR, ITAGR, DDATAR, IDATAR or TLBR", addr: addr(3, 15, 0, 1)})

	DTAGR  = define(Descriptor{Name: "DTAGR", Description: "Data Cache Tag Read Operation Register", Group: Diagnostic, Access: WriteOnly, Requires: CortexA5Diagnostics, addr: addr(3, 15, 2, 0)})
	ITAGR  = define(Descriptor{Name: "ITAGR", Description: "Instruction Cache Tag Read Operation Register", Group: Diagnostic, Access: WriteOnly, Requires: CortexA5Diagnostics, addr: addr(3, 15, 2, 1)})
	DDATAR = define(Descriptor{Name: "DDATAR", Description: "Data Cache Data Read Operation Register", Group: Diagnostic, Access: WriteOnly, Requires: CortexA5Diagnostics, addr: addr(3, 15, 4, 0)})
	IDATAR = define(Descriptor{Name: "IDATAR", Description: "Instruction Cache Data Read Operation Register", Group: Diagnostic, Access: WriteOnly, Requires: CortexA5Diagnostics, addr: addr(3, 15, 4, 1)})
	TLBR   = define(Descriptor{Name: "TLBR", Description: "TLB Data Read Operation Register", Group: Diagnostic, Access: WriteOnly, Requires: CortexA5Diagnostics, addr: addr(3, 15, 4, 2)})

	CBADDR    = define(Descriptor{Name: "CBADDR", Description: "Configuration Base Address Register", Group: Diagnostic, Access: ReadOnly, Requires: ConfigurationBase, addr: addr(4, 15, 0, 0)})
	TLBHITMAP = define(Descriptor{Name: "TLBHITMAP", Description: "TLB Hitmap Register", Group: Diagnostic, Access: ReadOnly, Requires: CortexA5Diagnostics, addr: addr(5, 15, 0, 0)})
)
