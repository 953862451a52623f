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

import (
	"fmt"

	"github.com/jetsetilly/cp15/curated"
)

// OffsetInOp2 is a family of registers that differ only in op2. The index of
// a member is added to the op2 field of the base address.
type OffsetInOp2 struct {
	Name     string
	Group    Group
	Access   Access
	Requires Feature
	Note     string

	// one description for each member of the family. the number of
	// descriptions is the size of the family
	Descriptions []string

	base Address
}

func newOffsetInOp2(f OffsetInOp2, base Address) OffsetInOp2 {
	if len(f.Descriptions) == 0 || int(base.op2)+len(f.Descriptions)-1 > maxOp2 {
		panic(fmt.Sprintf("cp15: %s family does not fit in op2", f.Name))
	}
	f.base = base
	return f
}

// Len returns the number of members in the family.
func (f OffsetInOp2) Len() int {
	return len(f.Descriptions)
}

// Index returns the member of the family at index n. Returns an
// InvalidParameter error if the index is out of range.
func (f OffsetInOp2) Index(n int) (Descriptor, error) {
	if n < 0 || n >= len(f.Descriptions) {
		return Descriptor{}, curated.Errorf(InvalidParameter,
			fmt.Sprintf("%s index of %d is not in range 0 to %d", f.Name, n, len(f.Descriptions)-1))
	}

	a, err := NewAddress(int(f.base.op1), int(f.base.crn), int(f.base.crm), int(f.base.op2)+n)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Name:        fmt.Sprintf("%s%d", f.Name, n),
		Description: f.Descriptions[n],
		Group:       f.Group,
		Access:      f.Access,
		Requires:    f.Requires,
		Note:        f.Note,
		addr:        a,
	}, nil
}

func (f OffsetInOp2) members() []Descriptor {
	m := make([]Descriptor, 0, len(f.Descriptions))
	for i := range f.Descriptions {
		d, err := f.Index(i)
		if err != nil {
			panic(err)
		}
		m = append(m, d)
	}
	return m
}

// TLBRegion selects the TLB affected by a TLB maintenance operation. The value
// is placed in the CRm field.
type TLBRegion uint8

// List of valid TLBRegion values.
const (
	InstructionTLB TLBRegion = 5
	DataTLB        TLBRegion = 6
	UnifiedTLB     TLBRegion = 7
)

func (r TLBRegion) String() string {
	switch r {
	case InstructionTLB:
		return "instruction"
	case DataTLB:
		return "data"
	case UnifiedTLB:
		return "unified"
	}
	return fmt.Sprintf("c%d", uint8(r))
}

// prefix used to name a member of a family
func (r TLBRegion) prefix() string {
	switch r {
	case InstructionTLB:
		return "I"
	case DataTLB:
		return "D"
	}
	return ""
}

// SelectorInCrm is a family of operations that differ only in CRm. The CRm
// value must be one of a small set of selectors.
type SelectorInCrm struct {
	Name     string
	Group    Group
	Access   Access
	Requires Feature
	Note     string

	// the %s verb is replaced by the selected region
	Description string

	// the selectors that are accepted by Select(), in order
	Permitted []TLBRegion

	base Address
}

func newSelectorInCrm(f SelectorInCrm, base Address) SelectorInCrm {
	if len(f.Permitted) == 0 {
		panic(fmt.Sprintf("cp15: %s family has no selectors", f.Name))
	}
	for _, r := range f.Permitted {
		if r > maxCRm {
			panic(fmt.Sprintf("cp15: %s family selector does not fit in CRm", f.Name))
		}
	}
	f.base = base
	return f
}

// Select returns the member of the family for the TLB region. Returns an
// InvalidParameter error if the region is not one of the permitted
// selectors.
func (f SelectorInCrm) Select(r TLBRegion) (Descriptor, error) {
	permitted := false
	for _, p := range f.Permitted {
		if p == r {
			permitted = true
			break // for loop
		}
	}
	if !permitted {
		return Descriptor{}, curated.Errorf(InvalidParameter,
			fmt.Sprintf("%s selector of c%d is not one of %v", f.Name, uint8(r), f.selectors()))
	}

	a, err := NewAddress(int(f.base.op1), int(f.base.crn), int(r), int(f.base.op2))
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Name:        r.prefix() + f.Name,
		Description: fmt.Sprintf(f.Description, r),
		Group:       f.Group,
		Access:      f.Access,
		Requires:    f.Requires,
		Note:        f.Note,
		addr:        a,
	}, nil
}

func (f SelectorInCrm) selectors() []string {
	s := make([]string, len(f.Permitted))
	for i, r := range f.Permitted {
		s[i] = fmt.Sprintf("c%d", uint8(r))
	}
	return s
}

func (f SelectorInCrm) members() []Descriptor {
	m := make([]Descriptor, 0, len(f.Permitted))
	for _, r := range f.Permitted {
		d, err := f.Select(r)
		if err != nil {
			panic(err)
		}
		m = append(m, d)
	}
	return m
}

var allTLBRegions = []TLBRegion{InstructionTLB, DataTLB, UnifiedTLB}

// VA to PA translation operations. "B4.2.6 Performing address translation
// operations" of ARM DDI 0406C.
var (
	v2pcwpr = defineFamily(newOffsetInOp2(OffsetInOp2{
		Name:   "V2PCWPR",
		Group:  AddressTranslation,
		Access: WriteOnly,
		Note:   "read the result from PAR after executing ISB",
		Descriptions: []string{
			"VA to PA translation, current state, PL1 read",
			"VA to PA translation, current state, PL1 write",
			"VA to PA translation, current state, PL0 read",
			"VA to PA translation, current state, PL0 write",
		},
	}, addr(0, 7, 8, 0)))

	v2powpr = defineFamily(newOffsetInOp2(OffsetInOp2{
		Name:     "V2POWPR",
		Group:    AddressTranslation,
		Access:   WriteOnly,
		Requires: SecurityExtensions,
		Note:     "read the result from PAR after executing ISB",
		Descriptions: []string{
			"VA to PA translation, other state, PL1 read",
			"VA to PA translation, other state, PL1 write",
			"VA to PA translation, other state, PL0 read",
			"VA to PA translation, other state, PL0 write",
		},
	}, addr(0, 7, 8, 4)))
)

// TLB maintenance operations on the local core. c8.
var (
	tlbiall = defineFamily(newSelectorInCrm(SelectorInCrm{
		Name:        "TLBIALL",
		Description: "Invalidate entire %s TLB",
		Group:       TLBMaintenance,
		Access:      WriteOnly,
		Note:        noteTLBMaintenance,
		Permitted:   allTLBRegions,
	}, addr(0, 8, 0, 0)))

	tlbimva = defineFamily(newSelectorInCrm(SelectorInCrm{
		Name:        "TLBIMVA",
		Description: "Invalidate %s TLB entry by MVA and ASID",
		Group:       TLBMaintenance,
		Access:      WriteOnly,
		Note:        noteTLBMaintenance,
		Permitted:   allTLBRegions,
	}, addr(0, 8, 0, 1)))

	tlbiasid = defineFamily(newSelectorInCrm(SelectorInCrm{
		Name:        "TLBIASID",
		Description: "Invalidate %s TLB by ASID match",
		Group:       TLBMaintenance,
		Access:      WriteOnly,
		Note:        noteTLBMaintenance,
		Permitted:   allTLBRegions,
	}, addr(0, 8, 0, 2)))

	// there are no instruction or data TLB variants of invalidate by MVA
	// all ASID
	tlbimvaa = defineFamily(newSelectorInCrm(SelectorInCrm{
		Name:        "TLBIMVAA",
		Description: "Invalidate %s TLB entry by MVA all ASID",
		Group:       TLBMaintenance,
		Access:      WriteOnly,
		Requires:    MultiprocessingExtensions,
		Note:        noteTLBMaintenance,
		Permitted:   []TLBRegion{UnifiedTLB}, // cp15.h also permits c5 and c6
	}, addr(0, 8, 0, 3)))
)

// V2PCWPR returns the VA to PA operation for the current security state. The
// index must be in the range 0 to 3 and selects op2 0 to 3.
func V2PCWPR(n int) (Descriptor, error) {
	return v2pcwpr.Index(n)
}

// V2POWPR returns the VA to PA operation for the other security state. The
// index must be in the range 0 to 3 and selects op2 4 to 7.
func V2POWPR(n int) (Descriptor, error) {
	return v2powpr.Index(n)
}

// TLBIALL returns the invalidate entire TLB operation for the region.
func TLBIALL(r TLBRegion) (Descriptor, error) {
	return tlbiall.Select(r)
}

// TLBIMVA returns the invalidate TLB entry by MVA and ASID operation for the
// region.
func TLBIMVA(r TLBRegion) (Descriptor, error) {
	return tlbimva.Select(r)
}

// TLBIASID returns the invalidate TLB by ASID match operation for the region.
func TLBIASID(r TLBRegion) (Descriptor, error) {
	return tlbiasid.Select(r)
}

// TLBIMVAA returns the invalidate TLB entry by MVA all ASID operation. Only the
// unified TLB is permitted.
func TLBIMVAA(r TLBRegion) (Descriptor, error) {
	return tlbimvaa.Select(r)
}
