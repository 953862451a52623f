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

// Identification registers. "B4.1.1 Identification registers, functional
// group" of ARM DDI 0406C.
var (
	MIDR = define(Descriptor{Name: "MIDR", Description: "Main ID Register", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 0, 0)})

	MPIDR = define(Descriptor{Name: "MPIDR", Description: "Multiprocessor Affinity Register", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 0, 5)})

	ID_PFR0  = define(Descriptor{Name: "ID_PFR0", Description: "Processor Feature Register 0", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 0)})
	ID_PFR1  = define(Descriptor{Name: "ID_PFR1", Description: "Processor Feature Register 1", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 1)})
	ID_DFR0  = define(Descriptor{Name: "ID_DFR0", Description: "Debug Feature Register 0", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 2)})
	ID_AFR0  = define(Descriptor{Name: "ID_AFR0", Description: "Auxiliary Feature Register 0", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 3)})
	ID_MMFR0 = define(Descriptor{Name: "ID_MMFR0", Description: "Memory Model Feature Register 0", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 4)})
	ID_MMFR1 = define(Descriptor{Name: "ID_MMFR1", Description: "Memory Model Feature Register 1", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 5)})
	ID_MMFR2 = define(Descriptor{Name: "ID_MMFR2", Description: "Memory Model Feature Register 2", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 6)})
	ID_MMFR3 = define(Descriptor{Name: "ID_MMFR3", Description: "Memory Model Feature Register 3", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 1, 7)})
	ID_ISAR0 = define(Descriptor{Name: "ID_ISAR0", Description: "Instruction Set Attribute Register 0", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 0)})
	ID_ISAR1 = define(Descriptor{Name: "ID_ISAR1", Description: "Instruction Set Attribute Register 1", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 1)})
	ID_ISAR2 = define(Descriptor{Name: "ID_ISAR2", Description: "Instruction Set Attribute Register 2", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 2)})
	ID_ISAR3 = define(Descriptor{Name: "ID_ISAR3", Description: "Instruction Set Attribute Register 3", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 3)})
	ID_ISAR4 = define(Descriptor{Name: "ID_ISAR4", Description: "Instruction Set Attribute Register 4", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 4)})
	ID_ISAR5 = define(Descriptor{Name: "ID_ISAR5", Description: "Instruction Set Attribute Register 5", Group: Identification, Access: ReadOnly, addr: addr(0, 0, 2, 5)})
)

// Cache and TLB identification.
var (
	CTR   = define(Descriptor{Name: "CTR", Description: "Cache Type Register", Group: CacheIdentification, Access: ReadOnly, addr: addr(0, 0, 0, 1)})
	TCMTR = define(Descriptor{Name: "TCMTR", Description: "TCM Type Register", Group: CacheIdentification, Access: ReadOnly, addr: addr(0, 0, 0, 2)})
	TLBTR = define(Descriptor{Name: "TLBTR", Description: "TLB Type Register", Group: CacheIdentification, Access: ReadOnly, addr: addr(0, 0, 0, 3)})

	// the value of CCSIDR depends on the cache selected by CSSELR
	CCSIDR = define(Descriptor{
		Name:        "CCSIDR",
		Description: "Cache Size ID Register",
		Group:       CacheIdentification,
		Access:      ReadOnly,
		Selector:    "CSSELR",
		Note:        "write CSSELR and execute ISB before reading",
		addr:        addr(1, 0, 0, 0),
	})

	CLIDR = define(Descriptor{Name: "CLIDR", Description: "Cache Level ID Register", Group: CacheIdentification, Access: ReadOnly, addr: addr(1, 0, 0, 1)})
	AIDR  = define(Descriptor{Name: "AIDR", Description: "Auxiliary ID Register", Group: CacheIdentification, Access: ReadOnly, addr: addr(1, 0, 0, 7)})

	CSSELR = define(Descriptor{
		Name:        "CSSELR",
		Description: "Cache Size Selection Register",
		Group:       CacheIdentification,
		Access:      ReadWrite,
		Note:        "selects the cache described by CCSIDR. execute ISB before reading CCSIDR",
		addr:        addr(2, 0, 0, 0),
	})
)
