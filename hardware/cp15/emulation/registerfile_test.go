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

package emulation_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/hardware/cp15/emulation"
	"github.com/jetsetilly/cp15/test"
)

func TestInterfaces(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	test.ExpectImplements[cp15.Primitive](t, rf)
	test.ExpectImplements[cp15.Synchroniser](t, rf)
}

func TestIdentification(t *testing.T) {
	for _, c := range []struct {
		core cp15.Core
		midr uint32
	}{
		{core: cp15.CortexA5, midr: 0x410fc051},
		{core: cp15.CortexA8, midr: 0x413fc082},
		{core: cp15.CortexA9, midr: 0x414fc091},
	} {
		rf := emulation.NewRegisterFile(c.core)
		test.ExpectEquality(t, rf.Read(cp15.MIDR.Address()), c.midr, c.core.Name)

		// identification registers cannot be written
		rf.Write(cp15.MIDR.Address(), 0)
		test.ExpectEquality(t, rf.Read(cp15.MIDR.Address()), c.midr, c.core.Name)
	}
}

func TestStorage(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	rf.Write(cp15.VBAR.Address(), 0x80000000)
	test.ExpectEquality(t, rf.Read(cp15.VBAR.Address()), uint32(0x80000000))

	rf.Write(cp15.CONTEXTIDR.Address(), 0x1234)
	test.ExpectEquality(t, rf.Read(cp15.CONTEXTIDR.Address()), uint32(0x1234))

	rf.Reset()
	test.ExpectEquality(t, rf.Read(cp15.VBAR.Address()), uint32(0))
	test.ExpectEquality(t, rf.Read(cp15.CONTEXTIDR.Address()), uint32(0))
}

func TestUnsupported(t *testing.T) {
	// the A8 does not have the configuration base address register. reads of
	// an unimplemented register are zero
	rf := emulation.NewRegisterFile(cp15.CortexA8)
	test.ExpectEquality(t, rf.Read(cp15.CBADDR.Address()), uint32(0))

	rf = emulation.NewRegisterFile(cp15.CortexA9)
	test.ExpectEquality(t, rf.Read(cp15.CBADDR.Address()), uint32(0x1f000000))

	// there is no register at this address
	a, err := cp15.NewAddress(7, 15, 15, 7)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rf.Read(a), uint32(0))
	rf.Write(a, 1)
}

func TestCacheSizeSelection(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	acc := cp15.NewAccessor(rf.Core(), rf)

	v, err := acc.Select(cp15.CCSIDR, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xe01fe019))
	test.ExpectEquality(t, rf.Operations("ISB"), 1)

	v, err = acc.Select(cp15.CCSIDR, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x201fe019))

	v, err = acc.Select(cp15.CCSIDR, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xe07fe03a))

	// no level 3 cache
	v, err = acc.Select(cp15.CCSIDR, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	test.ExpectEquality(t, rf.Operations("isb"), 4)
}

func TestPMCR(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	v := rf.Read(cp15.PMCR.Address())
	test.ExpectEquality(t, v>>24, uint32(0x41))
	test.ExpectEquality(t, (v>>11)&0x1f, uint32(6))

	rf = emulation.NewRegisterFile(cp15.CortexA5)
	v = rf.Read(cp15.PMCR.Address())
	test.ExpectEquality(t, (v>>11)&0x1f, uint32(2))

	// the reset bits are not stored
	rf.Write(cp15.PMCR.Address(), 0x07)
	test.ExpectEquality(t, rf.Read(cp15.PMCR.Address())&0x3f, uint32(0x01))
}

func TestSetClearPairs(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)

	rf.Write(cp15.PMCNTENSET.Address(), 0x80000005)
	test.ExpectEquality(t, rf.Read(cp15.PMCNTENSET.Address()), uint32(0x80000005))
	test.ExpectEquality(t, rf.Read(cp15.PMCNTENCLR.Address()), uint32(0x80000005))

	rf.Write(cp15.PMCNTENCLR.Address(), 0x00000004)
	test.ExpectEquality(t, rf.Read(cp15.PMCNTENSET.Address()), uint32(0x80000001))

	// bits for counters that are not implemented are ignored
	rf.Write(cp15.PMINTENSET.Address(), 0xffffffff)
	test.ExpectEquality(t, rf.Read(cp15.PMINTENSET.Address()), uint32(0x8000003f))
	rf.Write(cp15.PMINTENCLR.Address(), 0xffffffff)
	test.ExpectEquality(t, rf.Read(cp15.PMINTENCLR.Address()), uint32(0))
}

func TestEventCounterSelection(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	acc := cp15.NewAccessor(rf.Core(), rf)

	// set the event type of counters 0 and 1
	test.ExpectSuccess(t, acc.Write(cp15.PMSELR, 0))
	test.ExpectSuccess(t, acc.Write(cp15.PMXEVTYPER, 0x11))
	test.ExpectSuccess(t, acc.Write(cp15.PMSELR, 1))
	test.ExpectSuccess(t, acc.Write(cp15.PMXEVTYPER, 0x12))

	// the cycle counter filter is reached through PMXEVTYPER
	test.ExpectSuccess(t, acc.Write(cp15.PMSELR, cp15.PMCCFILTRSelector))
	test.ExpectSuccess(t, acc.Write(cp15.PMXEVTYPER, 0x80000000))

	v, err := acc.Select(cp15.PMXEVTYPER, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x11))

	v, err = acc.Select(cp15.PMXEVTYPER, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12))

	v, err = acc.Select(cp15.PMXEVTYPER, cp15.PMCCFILTRSelector)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x80000000))

	// the A9 has six counters
	v, err = acc.Select(cp15.PMXEVCNTR, 6)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}

func TestSoftwareIncrement(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	acc := cp15.NewAccessor(rf.Core(), rf)

	// counter 0 counts software increments. counter 1 counts something else
	test.ExpectSuccess(t, acc.Write(cp15.PMSELR, 1))
	test.ExpectSuccess(t, acc.Write(cp15.PMXEVTYPER, 0x11))

	// increments are ignored when the PMU is disabled
	test.ExpectSuccess(t, acc.Write(cp15.PMSWINC, 0x03))
	v, err := acc.Select(cp15.PMXEVCNTR, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	test.ExpectSuccess(t, acc.Write(cp15.PMCR, 0x01))
	test.ExpectSuccess(t, acc.Write(cp15.PMCNTENSET, 0x03))
	test.ExpectSuccess(t, acc.Write(cp15.PMSWINC, 0x03))
	test.ExpectSuccess(t, acc.Write(cp15.PMSWINC, 0x03))

	v, err = acc.Select(cp15.PMXEVCNTR, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(2))
	v, err = acc.Select(cp15.PMXEVCNTR, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectEquality(t, rf.Operations("PMSWINC"), 3)

	// overflow sets the flag in PMOVSR which is cleared by writing a one
	test.ExpectSuccess(t, acc.Write(cp15.PMSELR, 0))
	test.ExpectSuccess(t, acc.Write(cp15.PMXEVCNTR, 0xffffffff))
	test.ExpectSuccess(t, acc.Write(cp15.PMSWINC, 0x01))
	v, err = acc.Read(cp15.PMOVSR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01))
	test.ExpectSuccess(t, acc.Write(cp15.PMOVSR, 0x01))
	v, err = acc.Read(cp15.PMOVSR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	// reset the event counters with PMCR
	test.ExpectSuccess(t, acc.Write(cp15.PMCR, 0x03))
	v, err = acc.Select(cp15.PMXEVCNTR, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}

func TestCycleCounter(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA8)

	// not enabled
	rf.Tick(100)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(0))

	rf.Write(cp15.PMCR.Address(), 0x01)
	rf.Write(cp15.PMCNTENSET.Address(), 0x80000000)
	rf.Tick(100)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(100))

	// divide by 64
	rf.Write(cp15.PMCR.Address(), 0x0d)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(0))
	rf.Tick(100)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(1))
	rf.Tick(28)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(2))

	// counts of zero or less are ignored
	rf.Write(cp15.PMCR.Address(), 0x01)
	rf.Write(cp15.PMCCNTR.Address(), 10)
	rf.Tick(-1)
	rf.Tick(0)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(10))
	test.ExpectEquality(t, rf.Read(cp15.PMOVSR.Address()), uint32(0))

	// overflow
	rf.Write(cp15.PMCR.Address(), 0x01)
	rf.Write(cp15.PMCCNTR.Address(), 0xfffffff0)
	rf.Tick(0x20)
	test.ExpectEquality(t, rf.Read(cp15.PMCCNTR.Address()), uint32(0x10))
	test.ExpectEquality(t, rf.Read(cp15.PMOVSR.Address()), uint32(0x80000000))
}

func TestAddressTranslation(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	acc := cp15.NewAccessor(rf.Core(), rf)

	d, err := cp15.V2PCWPR(0)
	test.DemandSuccess(t, err)

	// MMU is disabled at reset
	test.ExpectSuccess(t, acc.Write(d, 0x12345678))
	v, err := acc.Read(cp15.PAR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345000))
	test.ExpectEquality(t, rf.Operations(d.Name), 1)

	sctlr, err := acc.Read(cp15.SCTLR)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, acc.Write(cp15.SCTLR, sctlr|0x01))
	test.ExpectSuccess(t, acc.Write(d, 0x12345678))
	v, err = acc.Read(cp15.PAR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v&0x01, uint32(0x01))
}

func TestMaintenanceCounts(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)
	acc := cp15.NewAccessor(rf.Core(), rf)

	test.ExpectSuccess(t, acc.Write(cp15.ICIALLU, 0))
	test.ExpectSuccess(t, acc.Write(cp15.ICIALLU, 0))
	test.ExpectSuccess(t, acc.Write(cp15.CP15DSB, 0))

	d, err := cp15.TLBIALL(cp15.UnifiedTLB)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, acc.Write(d, 0))

	test.ExpectEquality(t, rf.Operations("ICIALLU"), 2)
	test.ExpectEquality(t, rf.Operations("DSB"), 1)
	test.ExpectEquality(t, rf.Operations("TLBIALL"), 1)
	test.ExpectEquality(t, rf.Operations("ITLBIALL"), 0)

	// operations read as zero
	test.ExpectEquality(t, rf.Read(cp15.ICIALLU.Address()), uint32(0))
}

func TestConcurrentAccess(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA9)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rf.Write(cp15.ICIALLU.Address(), 0)
				_ = rf.Read(cp15.MIDR.Address())
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, rf.Operations("ICIALLU"), 800)
}

func TestString(t *testing.T) {
	rf := emulation.NewRegisterFile(cp15.CortexA8)
	s := rf.String()
	test.ExpectSuccess(t, len(s) > 0)
	test.ExpectSuccess(t, !containsLine(s, "CBADDR"))
	test.ExpectSuccess(t, containsLine(s, "MIDR       413fc082"))
}
