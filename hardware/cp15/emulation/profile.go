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

package emulation

import (
	"github.com/jetsetilly/cp15/hardware/cp15"
)

// profile is the fixed information for a core.
type profile struct {
	// reset values of registers, keyed by register name. registers not listed
	// reset to zero
	reset map[string]uint32

	// cache size ID registers, indexed by the CSSELR value
	ccsidr map[uint32]uint32

	// number of event counters implemented by the performance monitors
	numCounters int

	// the IDCODE field of PMCR
	pmuID uint32
}

// values common to all cores. taken from the technical reference manuals of
// the Cortex-A cores
var commonReset = map[string]uint32{
	"SCTLR":    0x00c50078,
	"CLIDR":    0x0a200023,
	"CSSELR":   0x00000000,
	"ID_PFR0":  0x00001231,
	"ID_PFR1":  0x00000011,
	"ID_DFR0":  0x00010444,
	"ID_MMFR0": 0x00100103,
	"ID_MMFR1": 0x20000000,
	"ID_MMFR2": 0x01230000,
	"ID_MMFR3": 0x00102111,
	"ID_ISAR0": 0x00101111,
	"ID_ISAR1": 0x13112111,
	"ID_ISAR2": 0x21232041,
	"ID_ISAR3": 0x11112131,
	"ID_ISAR4": 0x00011142,
	"PMCEID0":  0x3fff0f3f,
}

var commonCCSIDR = map[uint32]uint32{
	0b000: 0xe01fe019, // level 1 data
	0b001: 0x201fe019, // level 1 instruction
	0b010: 0xe07fe03a, // level 2 unified
}

func newProfile(core cp15.Core) profile {
	p := profile{
		reset:  make(map[string]uint32),
		ccsidr: commonCCSIDR,
	}
	for k, v := range commonReset {
		p.reset[k] = v
	}

	switch core.Name {
	case cp15.CortexA5.Name:
		p.reset["MIDR"] = 0x410fc051
		p.reset["MPIDR"] = 0x80000000
		p.reset["CTR"] = 0x83338003
		p.reset["CBADDR"] = 0x1f000000
		p.numCounters = 2
		p.pmuID = 0x05
	case cp15.CortexA8.Name:
		p.reset["MIDR"] = 0x413fc082
		p.reset["CTR"] = 0x82048004
		p.numCounters = 4
		p.pmuID = 0x08
	case cp15.CortexA9.Name:
		p.reset["MIDR"] = 0x414fc091
		p.reset["MPIDR"] = 0x80000000
		p.reset["CTR"] = 0x83338003
		p.reset["CBADDR"] = 0x1f000000
		p.numCounters = 6
		p.pmuID = 0x09
	default:
		// implementer is ARM. all other fields are zero except for the
		// architecture field, which indicates that the CPUID scheme is used
		p.reset["MIDR"] = 0x410f0000
		p.reset["CTR"] = 0x83338003
	}

	return p
}
