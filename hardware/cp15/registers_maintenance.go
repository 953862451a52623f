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

const (
	noteCacheMaintenance = "follow with DSB. follow with ISB if instruction fetches are affected"
	noteTLBMaintenance   = "follow with DSB and then ISB before relying on the new translation"
	noteBarrier          = "deprecated in ARMv7. the value written should be zero. prefer the dedicated instruction"
	noteBroadcast        = "broadcast to the inner shareable domain. " + noteCacheMaintenance
)

// Cache and branch predictor maintenance operations. c7.
//
// Operations "by MVA" take a modified virtual address in <Rt>. Operations "by
// set/way" take the set, way and cache level in <Rt>. The layout of the
// operand value is the caller's responsibility.
var (
	// this was the wait for interrupt operation before ARMv7
	NOP = define(Descriptor{Name: "NOP", Description: "No operation", Group: CacheMaintenance, Access: WriteOnly, addr: addr(0, 7, 0, 4)})

	ICIALLUIS = define(Descriptor{Name: "ICIALLUIS", Description: "Invalidate all instruction caches to PoU, Inner Shareable", Group: CacheMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteBroadcast, addr: addr(0, 7, 1, 0)})
	BPIALLIS  = define(Descriptor{Name: "BPIALLIS", Description: "Invalidate all branch predictors, Inner Shareable", Group: CacheMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteBroadcast, addr: addr(0, 7, 1, 6)})

	ICIALLU = define(Descriptor{Name: "ICIALLU", Description: "Invalidate all instruction caches to PoU", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 5, 0)})
	ICIMVAU = define(Descriptor{Name: "ICIMVAU", Description: "Invalidate instruction cache line by MVA to PoU", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 5, 1)})
	BPIALL  = define(Descriptor{Name: "BPIALL", Description: "Invalidate all branch predictors", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 5, 6)})
	BPIMVA  = define(Descriptor{Name: "BPIMVA", Description: "Invalidate branch predictor by MVA", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 5, 7)})

	DCIMVAC = define(Descriptor{Name: "DCIMVAC", Description: "Invalidate data cache line by MVA to PoC", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 6, 1)})
	DCISW   = define(Descriptor{Name: "DCISW", Description: "Invalidate data cache line by set/way", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 6, 2)})

	DCCMVAC = define(Descriptor{Name: "DCCMVAC", Description: "Clean data cache line by MVA to PoC", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 10, 1)})
	DCCSW   = define(Descriptor{Name: "DCCSW", Description: "Clean data cache line by set/way", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 10, 2)})
	DCCMVAU = define(Descriptor{Name: "DCCMVAU", Description: "Clean data cache line by MVA to PoU", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 11, 1)})

	DCCIMVAC = define(Descriptor{Name: "DCCIMVAC", Description: "Clean and invalidate data cache line by MVA to PoC", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 14, 1)})
	DCCISW   = define(Descriptor{Name: "DCCISW", Description: "Clean and invalidate data cache line by set/way", Group: CacheMaintenance, Access: WriteOnly, Note: noteCacheMaintenance, addr: addr(0, 7, 14, 2)})
)

// Address translation. The VA to PA operations are generated by the V2PCWPR
// and V2POWPR families. The result of all of them is read from PAR.
var (
	PAR = define(Descriptor{
		Name:        "PAR",
		Description: "Physical Address Register",
		Group:       AddressTranslation,
		Access:      ReadWrite,
		Note:        "holds the result of the most recent VA to PA operation. execute ISB before reading",
		addr:        addr(0, 7, 4, 0),
	})
)

// Barrier operations. c7. Accessible from user mode.
var (
	CP15ISB = define(Descriptor{Name: "ISB", Description: "Instruction Synchronization Barrier operation", Group: Barrier, Access: WriteOnly, UserAccess: WriteOnly, Note: noteBarrier, addr: addr(0, 7, 5, 4)})
	CP15DSB = define(Descriptor{Name: "DSB", Description: "Data Synchronization Barrier operation", Group: Barrier, Access: WriteOnly, UserAccess: WriteOnly, Note: noteBarrier, addr: addr(0, 7, 10, 4)})
	CP15DMB = define(Descriptor{Name: "DMB", Description: "Data Memory Barrier operation", Group: Barrier, Access: WriteOnly, UserAccess: WriteOnly, Note: noteBarrier, addr: addr(0, 7, 10, 5)})
)

// TLB maintenance operations, Inner Shareable. c8, c3. The local operations
// are generated by the TLBIALL, TLBIMVA, TLBIASID and TLBIMVAA families.
var (
	TLBIALLIS  = define(Descriptor{Name: "TLBIALLIS", Description: "Invalidate entire unified TLB, Inner Shareable", Group: TLBMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteTLBMaintenance, addr: addr(0, 8, 3, 0)})
	TLBIMVAIS  = define(Descriptor{Name: "TLBIMVAIS", Description: "Invalidate unified TLB entry by MVA and ASID, Inner Shareable", Group: TLBMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteTLBMaintenance, addr: addr(0, 8, 3, 1)})
	TLBIASIDIS = define(Descriptor{Name: "TLBIASIDIS", Description: "Invalidate unified TLB by ASID match, Inner Shareable", Group: TLBMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteTLBMaintenance, addr: addr(0, 8, 3, 2)})
	TLBIMVAAIS = define(Descriptor{Name: "TLBIMVAAIS", Description: "Invalidate unified TLB entry by MVA all ASID, Inner Shareable", Group: TLBMaintenance, Access: WriteOnly, Requires: MultiprocessingExtensions, Note: noteTLBMaintenance, addr: addr(0, 8, 3, 3)})
)
