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

// Performance monitors. c9. "C12 The Performance Monitors Extension" of ARM
// DDI 0406C.
//
// The event counter accessed through PMXEVTYPER and PMXEVCNTR is the counter
// selected by PMSELR.
var (
	PMCR       = define(Descriptor{Name: "PMCR", Description: "Performance Monitors Control Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 0)})
	PMCNTENSET = define(Descriptor{Name: "PMCNTENSET", Description: "Performance Monitors Count Enable Set Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 1)})
	PMCNTENCLR = define(Descriptor{Name: "PMCNTENCLR", Description: "Performance Monitors Count Enable Clear Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 2)})
	PMOVSR     = define(Descriptor{Name: "PMOVSR", Description: "Performance Monitors Overflow Flag Status Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 3)})
	PMSWINC    = define(Descriptor{Name: "PMSWINC", Description: "Performance Monitors Software Increment Register", Group: PerformanceMonitor, Access: WriteOnly, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 4)})
	PMSELR     = define(Descriptor{Name: "PMSELR", Description: "Performance Monitors Event Counter Selection Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, Note: "execute ISB before accessing PMXEVTYPER or PMXEVCNTR", addr: addr(0, 9, 12, 5)})
	PMCEID0    = define(Descriptor{Name: "PMCEID0", Description: "Performance Monitors Common Event Identification Register 0", Group: PerformanceMonitor, Access: ReadOnly, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 6)})
	PMCEID1    = define(Descriptor{Name: "PMCEID1", Description: "Performance Monitors Common Event Identification Register 1", Group: PerformanceMonitor, Access: ReadOnly, Requires: PerformanceMonitors, addr: addr(0, 9, 12, 7)})
	PMCCNTR    = define(Descriptor{Name: "PMCCNTR", Description: "Performance Monitors Cycle Count Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 13, 0)})

	PMXEVTYPER = define(Descriptor{
		Name:        "PMXEVTYPER",
		Description: "Performance Monitors Event Type Select Register",
		Group:       PerformanceMonitor,
		Access:      ReadWrite,
		Requires:    PerformanceMonitors,
		Selector:    "PMSELR",
		AliasOf:     "PMCCFILTR",
		addr:        addr(0, 9, 13, 1),
	})

	// PMCCFILTR shares its encoding with PMXEVTYPER. the shared encoding is
	// kept from the source register table and should be checked against the
	// reference manual for the target core. the register is reached through
	// PMXEVTYPER when PMSELR.SEL is 31
	PMCCFILTR = define(Descriptor{
		Name:        "PMCCFILTR",
		Description: "Performance Monitors Cycle Count Filter Control Register",
		Group:       PerformanceMonitor,
		Access:      ReadWrite,
		Requires:    PerformanceMonitors,
		Selector:    "PMSELR",
		AliasOf:     "PMXEVTYPER",
		Note:        "write 31 to PMSELR and execute ISB before accessing",
		addr:        addr(0, 9, 13, 1),
	})

	PMXEVCNTR = define(Descriptor{
		Name:        "PMXEVCNTR",
		Description: "Performance Monitors Event Count Register",
		Group:       PerformanceMonitor,
		Access:      ReadWrite,
		Requires:    PerformanceMonitors,
		Selector:    "PMSELR",
		addr:        addr(0, 9, 13, 2),
	})

	PMUSERENR  = define(Descriptor{Name: "PMUSERENR", Description: "Performance Monitors User Enable Register", Group: PerformanceMonitor, Access: ReadWrite, UserAccess: ReadOnly, Requires: PerformanceMonitors, addr: addr(0, 9, 14, 0)})
	PMINTENSET = define(Descriptor{Name: "PMINTENSET", Description: "Performance Monitors Interrupt Enable Set Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 14, 1)})
	PMINTENCLR = define(Descriptor{Name: "PMINTENCLR", Description: "Performance Monitors Interrupt Enable Clear Register", Group: PerformanceMonitor, Access: ReadWrite, Requires: PerformanceMonitors, addr: addr(0, 9, 14, 2)})
)

// PMCCFILTRSelector is the value written to PMSELR to make PMXEVTYPER access
// PMCCFILTR.
const PMCCFILTRSelector = 31
