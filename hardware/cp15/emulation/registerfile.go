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
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/logger"
)

// the tag used for all log entries created by the register file.
const logTag = "cp15"

// PMCR bits.
const (
	pmcrEnable        = 0x01
	pmcrEventReset    = 0x02
	pmcrCycleReset    = 0x04
	pmcrCycleDivider  = 0x08
	pmcrExport        = 0x10
	pmcrDisableProhib = 0x20
	pmcrWritable      = pmcrEnable | pmcrCycleDivider | pmcrExport | pmcrDisableProhib
	pmcrImplementer   = 0x41
)

// the bit in the PMU enable and overflow registers that refers to the cycle
// counter.
const cycleCounterBit = 0x80000000

// the SEL field of PMSELR.
const pmselrMask = 0x1f

// the event number of the software increment event.
const eventSoftwareIncrement = 0x00

// the fault bit of PAR.
const parFault = 0x01

// RegisterFile is an emulation of the system control coprocessor registers of
// a single core. It implements the cp15.Primitive interface.
type RegisterFile struct {
	crit sync.Mutex

	core cp15.Core
	prof profile

	// value of storage registers keyed by register name
	regs map[string]uint32

	// performance monitors
	pmcr     uint32
	pmcnten  uint32
	pminten  uint32
	pmovs    uint32
	pmselr   uint32
	pmccntr  uint32
	pmccfilt uint32
	evtype   []uint32
	evcnt    []uint32

	// cycles not yet counted when the cycle counter divider is enabled
	divider int

	// number of times each operation has been performed, keyed by name
	ops map[string]int

	// whether logging is allowed
	logging bool
}

// NewRegisterFile is the preferred method of initialisation for the
// RegisterFile type.
func NewRegisterFile(core cp15.Core) *RegisterFile {
	rf := &RegisterFile{
		core: core,
		prof: newProfile(core),
	}
	rf.Reset()
	return rf
}

// Reset all registers to their reset values. Operation counts are also reset.
func (rf *RegisterFile) Reset() {
	rf.crit.Lock()
	defer rf.crit.Unlock()

	rf.regs = make(map[string]uint32)
	for k, v := range rf.prof.reset {
		rf.regs[k] = v
	}

	rf.pmcr = 0
	rf.pmcnten = 0
	rf.pminten = 0
	rf.pmovs = 0
	rf.pmselr = 0
	rf.pmccntr = 0
	rf.pmccfilt = 0
	rf.evtype = make([]uint32, rf.prof.numCounters)
	rf.evcnt = make([]uint32, rf.prof.numCounters)
	rf.divider = 0

	rf.ops = make(map[string]int)
}

// Core returns the core being emulated.
func (rf *RegisterFile) Core() cp15.Core {
	return rf.core
}

// SetLogging turns logging of register accesses on or off.
func (rf *RegisterFile) SetLogging(logging bool) {
	rf.crit.Lock()
	defer rf.crit.Unlock()
	rf.logging = logging
}

// AllowLogging implements the logger.Permission interface.
func (rf *RegisterFile) AllowLogging() bool {
	return rf.logging
}

// Operations returns the number of times the named operation has been
// performed. Barriers issued with ISB() are counted under the name "ISB".
func (rf *RegisterFile) Operations(name string) int {
	rf.crit.Lock()
	defer rf.crit.Unlock()
	return rf.ops[strings.ToUpper(name)]
}

// ISB implements the cp15.Synchroniser interface.
func (rf *RegisterFile) ISB() {
	rf.crit.Lock()
	defer rf.crit.Unlock()
	rf.ops[cp15.CP15ISB.Name]++
}

// lookup the descriptor for the address
func (rf *RegisterFile) lookup(a cp15.Address) (cp15.Descriptor, bool) {
	ds := cp15.ByAddress(a)
	if len(ds) == 0 {
		logger.Logf(rf, logTag, "no register at %s", a)
		return cp15.Descriptor{}, false
	}

	// PMCCFILTR shares the address of PMXEVTYPER. which of the two is
	// accessed depends on the value of PMSELR
	d := ds[0]
	for _, e := range ds {
		if e.Name == cp15.PMXEVTYPER.Name {
			d = e
		}
	}

	if !rf.core.Supports(d) {
		logger.Logf(rf, logTag, "%s is not implemented by %s", d.Name, rf.core.Name)
		return cp15.Descriptor{}, false
	}

	return d, true
}

// Read implements the cp15.Primitive interface. Reading an address that has no
// register or that is not readable returns zero.
func (rf *RegisterFile) Read(a cp15.Address) uint32 {
	rf.crit.Lock()
	defer rf.crit.Unlock()

	d, ok := rf.lookup(a)
	if !ok {
		return 0
	}

	if !d.Access.Readable() {
		logger.Logf(rf, logTag, "ignoring read of %s (%s)", d.Name, d.Access)
		return 0
	}

	v := rf.read(d)
	logger.Logf(rf, logTag, "mrc %s -> %08x", d.Name, v)
	return v
}

func (rf *RegisterFile) read(d cp15.Descriptor) uint32 {
	switch d.Name {
	case "CCSIDR":
		return rf.prof.ccsidr[rf.regs["CSSELR"]]
	case "PMCR":
		return pmcrImplementer<<24 | rf.prof.pmuID<<16 | uint32(rf.prof.numCounters)<<11 | rf.pmcr
	case "PMCNTENSET", "PMCNTENCLR":
		return rf.pmcnten
	case "PMINTENSET", "PMINTENCLR":
		return rf.pminten
	case "PMOVSR":
		return rf.pmovs
	case "PMSELR":
		return rf.pmselr
	case "PMCCNTR":
		return rf.pmccntr
	case "PMCCFILTR":
		return rf.pmccfilt
	case "PMXEVTYPER":
		if rf.pmselr == cp15.PMCCFILTRSelector {
			return rf.pmccfilt
		}
		if n, ok := rf.selected(); ok {
			return rf.evtype[n]
		}
		return 0
	case "PMXEVCNTR":
		if n, ok := rf.selected(); ok {
			return rf.evcnt[n]
		}
		return 0
	}
	return rf.regs[d.Name]
}

// selected returns the event counter selected by PMSELR.
func (rf *RegisterFile) selected() (int, bool) {
	n := int(rf.pmselr)
	if n >= len(rf.evcnt) {
		logger.Logf(rf, logTag, "PMSELR selects counter %d but only %d are implemented", n, len(rf.evcnt))
		return 0, false
	}
	return n, true
}

// Write implements the cp15.Primitive interface. Writing to an address that
// has no register or that is not writable has no effect.
func (rf *RegisterFile) Write(a cp15.Address, v uint32) {
	rf.crit.Lock()
	defer rf.crit.Unlock()

	d, ok := rf.lookup(a)
	if !ok {
		return
	}

	if !d.Access.Writable() {
		logger.Logf(rf, logTag, "ignoring write to %s (value of %08x)", d.Name, v)
		return
	}

	if d.IsOperation() {
		rf.ops[d.Name]++
		logger.Logf(rf, logTag, "mcr %s <- %08x", d.Name, v)
		rf.operation(d, v)
		return
	}

	logger.Logf(rf, logTag, "mcr %s <- %08x", d.Name, v)
	rf.write(d, v)
}

func (rf *RegisterFile) write(d cp15.Descriptor, v uint32) {
	switch d.Name {
	case "CSSELR":
		rf.regs[d.Name] = v & 0x0f
	case "PMCR":
		rf.pmcr = v & pmcrWritable
		if v&pmcrEventReset == pmcrEventReset {
			for i := range rf.evcnt {
				rf.evcnt[i] = 0
			}
		}
		if v&pmcrCycleReset == pmcrCycleReset {
			rf.pmccntr = 0
			rf.divider = 0
		}
	case "PMCNTENSET":
		rf.pmcnten |= v & rf.counterMask()
	case "PMCNTENCLR":
		rf.pmcnten &^= v
	case "PMINTENSET":
		rf.pminten |= v & rf.counterMask()
	case "PMINTENCLR":
		rf.pminten &^= v
	case "PMOVSR":
		rf.pmovs &^= v
	case "PMSELR":
		rf.pmselr = v & pmselrMask
	case "PMCCNTR":
		rf.pmccntr = v
	case "PMXEVTYPER":
		if rf.pmselr == cp15.PMCCFILTRSelector {
			rf.pmccfilt = v
			return
		}
		if n, ok := rf.selected(); ok {
			rf.evtype[n] = v
		}
	case "PMXEVCNTR":
		if n, ok := rf.selected(); ok {
			rf.evcnt[n] = v
		}
	default:
		rf.regs[d.Name] = v
	}
}

// counterMask returns the bits of the PMU enable registers that correspond to
// an implemented counter.
func (rf *RegisterFile) counterMask() uint32 {
	return cycleCounterBit | (uint32(1)<<len(rf.evcnt) - 1)
}

func (rf *RegisterFile) operation(d cp15.Descriptor, v uint32) {
	switch {
	case d.Name == "PMSWINC":
		if rf.pmcr&pmcrEnable == 0 {
			return
		}
		for i := range rf.evcnt {
			if v&(1<<i) == 0 || rf.pmcnten&(1<<i) == 0 {
				continue
			}
			if rf.evtype[i]&0xff != eventSoftwareIncrement {
				continue
			}
			rf.evcnt[i]++
			if rf.evcnt[i] == 0 {
				rf.pmovs |= 1 << i
			}
		}

	case strings.HasPrefix(d.Name, "V2PCWPR") || strings.HasPrefix(d.Name, "V2POWPR"):
		// the only translation regime emulated is the flat mapping used when
		// the MMU is disabled
		if rf.regs["SCTLR"]&0x01 == 0x01 {
			logger.Logf(rf, logTag, "%s: translation with the MMU enabled is not emulated", d.Name)
			rf.regs["PAR"] = parFault
			return
		}
		rf.regs["PAR"] = v &^ 0xfff
	}
}

// Tick advances the cycle counter by the number of cycles. The counter only
// advances if it is enabled by PMCR and PMCNTENSET.
func (rf *RegisterFile) Tick(cycles int) {
	if cycles <= 0 {
		return
	}

	rf.crit.Lock()
	defer rf.crit.Unlock()

	if rf.pmcr&pmcrEnable == 0 || rf.pmcnten&cycleCounterBit == 0 {
		return
	}

	if rf.pmcr&pmcrCycleDivider == pmcrCycleDivider {
		rf.divider += cycles
		cycles = rf.divider / 64
		rf.divider %= 64
	}

	n := rf.pmccntr + uint32(cycles)
	if n < rf.pmccntr {
		rf.pmovs |= cycleCounterBit
	}
	rf.pmccntr = n
}

// String returns the value of every storage register implemented by the core.
func (rf *RegisterFile) String() string {
	rf.crit.Lock()
	defer rf.crit.Unlock()

	s := strings.Builder{}
	for _, d := range cp15.All() {
		if d.IsOperation() || !d.Access.Readable() || !rf.core.Supports(d) {
			continue
		}
		s.WriteString(fmt.Sprintf("%-10s %08x\n", d.Name, rf.read(d)))
	}
	return s.String()
}
