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

// Package emulation implements the cp15.Primitive interface with an emulated
// register file. It allows the register table to be exercised on a host that
// is not an ARMv7-A core, or from an unprivileged process.
//
// The emulation is a sketch of the real system control coprocessor. Storage
// registers hold whatever value is written to them. Identification registers
// return fixed values appropriate for the core. Cache and TLB maintenance
// operations and barriers have no effect other than being counted. The
// following registers have more complete implementations:
//
//	CCSIDR is indexed by CSSELR
//	PMXEVTYPER and PMXEVCNTR are indexed by PMSELR, with index 31 selecting PMCCFILTR
//	the PMU set/clear register pairs
//	PMOVSR is write-one-to-clear
//	PMSWINC increments event counters configured for the software increment event
//	PMCCNTR advances with calls to Tick()
//	the VA to PA operations write a flat mapping to PAR when the MMU is disabled
package emulation
