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

package cp15_test

import (
	"testing"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/test"
)

func TestOffsetInOp2(t *testing.T) {
	for n := 0; n < 4; n++ {
		d, err := cp15.V2PCWPR(n)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d.Address().CRn(), 7)
		test.ExpectEquality(t, d.Address().CRm(), 8)
		test.ExpectEquality(t, d.Address().Op2(), n)
		test.ExpectEquality(t, d.Group, cp15.AddressTranslation)
		test.ExpectEquality(t, d.Requires, cp15.Mandatory)

		d, err = cp15.V2POWPR(n)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d.Address().CRn(), 7)
		test.ExpectEquality(t, d.Address().CRm(), 8)
		test.ExpectEquality(t, d.Address().Op2(), n+4)
		test.ExpectEquality(t, d.Requires, cp15.SecurityExtensions)
	}

	for _, n := range []int{-1, 4, 5, 8, 100} {
		_, err := cp15.V2PCWPR(n)
		test.ExpectFailure(t, err, n)
		test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter), n)

		_, err = cp15.V2POWPR(n)
		test.ExpectFailure(t, err, n)
		test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter), n)
	}
}

func TestOffsetInOp2Names(t *testing.T) {
	d, err := cp15.V2POWPR(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Name, "V2POWPR2")

	e, ok := cp15.ByName("v2powpr2")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Address(), d.Address())
}

func TestSelectorInCrm(t *testing.T) {
	type generator func(cp15.TLBRegion) (cp15.Descriptor, error)

	for _, f := range []struct {
		name string
		gen  generator
		op2  int
	}{
		{name: "TLBIALL", gen: cp15.TLBIALL, op2: 0},
		{name: "TLBIMVA", gen: cp15.TLBIMVA, op2: 1},
		{name: "TLBIASID", gen: cp15.TLBIASID, op2: 2},
	} {
		for crm := 0; crm <= 15; crm++ {
			d, err := f.gen(cp15.TLBRegion(crm))
			switch crm {
			case 5, 6, 7:
				test.DemandSuccess(t, err, f.name, crm)
				test.ExpectEquality(t, d.Address().Op1(), 0, f.name, crm)
				test.ExpectEquality(t, d.Address().CRn(), 8, f.name, crm)
				test.ExpectEquality(t, d.Address().CRm(), crm, f.name, crm)
				test.ExpectEquality(t, d.Address().Op2(), f.op2, f.name, crm)
				test.ExpectEquality(t, d.Group, cp15.TLBMaintenance, f.name, crm)
				test.ExpectSuccess(t, d.IsOperation(), f.name, crm)
			default:
				test.ExpectFailure(t, err, f.name, crm)
				test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter), f.name, crm)
			}
		}
	}

	// selectors that do not fit in CRm are also rejected
	_, err := cp15.TLBIALL(cp15.TLBRegion(16))
	test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter))
}

func TestSelectorInCrmNames(t *testing.T) {
	for _, c := range []struct {
		region cp15.TLBRegion
		name   string
	}{
		{region: cp15.InstructionTLB, name: "ITLBIASID"},
		{region: cp15.DataTLB, name: "DTLBIASID"},
		{region: cp15.UnifiedTLB, name: "TLBIASID"},
	} {
		d, err := cp15.TLBIASID(c.region)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d.Name, c.name)

		e, ok := cp15.ByName(c.name)
		test.ExpectSuccess(t, ok, c.name)
		test.ExpectEquality(t, e.Address(), d.Address(), c.name)
	}
}

func TestTLBIMVAA(t *testing.T) {
	d, err := cp15.TLBIMVAA(cp15.UnifiedTLB)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Name, "TLBIMVAA")
	test.ExpectEquality(t, d.Address().CRm(), 7)
	test.ExpectEquality(t, d.Address().Op2(), 3)
	test.ExpectEquality(t, d.Requires, cp15.MultiprocessingExtensions)

	for _, r := range []cp15.TLBRegion{cp15.InstructionTLB, cp15.DataTLB, 0, 3} {
		_, err := cp15.TLBIMVAA(r)
		test.ExpectSuccess(t, curated.Is(err, cp15.InvalidParameter), r)
	}
}

func TestFamilyIdempotence(t *testing.T) {
	for n := 0; n < 4; n++ {
		a, errA := cp15.V2POWPR(n)
		b, errB := cp15.V2POWPR(n)
		test.ExpectSuccess(t, errA)
		test.ExpectSuccess(t, errB)
		test.ExpectEquality(t, a.Address(), b.Address())
		test.ExpectEquality(t, a.Name, b.Name)
	}

	for _, r := range []cp15.TLBRegion{cp15.InstructionTLB, cp15.DataTLB, cp15.UnifiedTLB} {
		a, errA := cp15.TLBIMVA(r)
		b, errB := cp15.TLBIMVA(r)
		test.ExpectSuccess(t, errA)
		test.ExpectSuccess(t, errB)
		test.ExpectEquality(t, a.Address(), b.Address())
	}

	// every descriptor, fixed or family member, resolves to the same address
	// on every lookup
	for _, d := range cp15.All() {
		a, okA := cp15.ByName(d.Name)
		b, okB := cp15.ByName(d.Name)
		test.ExpectSuccess(t, okA, d.Name)
		test.ExpectSuccess(t, okB, d.Name)
		test.ExpectEquality(t, a.Address(), b.Address(), d.Name)
		test.ExpectEquality(t, a.Address(), d.Address(), d.Name)
	}

	// failures are also repeatable
	_, errA := cp15.TLBIMVA(3)
	_, errB := cp15.TLBIMVA(3)
	test.ExpectEquality(t, errA.Error(), errB.Error())
}
