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

import "strings"

// Group is the functional area that a register belongs to.
type Group int

// List of valid Group values.
const (
	// main ID, feature and instruction set attribute registers. all read-only
	Identification Group = iota

	// cache and TLB type and cache size identification. includes CSSELR
	CacheIdentification

	// system, auxiliary and coprocessor access control. includes the
	// security extension configuration registers
	SystemControl

	// translation table base, translation table control and domain access
	TranslationTable

	// fault status and fault address registers
	Fault

	// cache and branch predictor maintenance operations
	CacheMaintenance

	// the physical address register and the VA to PA operations
	AddressTranslation

	// CP15 barrier operations
	Barrier

	// TLB maintenance operations
	TLBMaintenance

	// performance monitor registers
	PerformanceMonitor

	// memory region remap registers
	MemoryRemap

	// vector base address registers and interrupt status
	VectorBase

	// context ID and software thread ID registers
	ContextID

	// implementation defined diagnostic registers and the configuration base
	// address register
	Diagnostic

	numGroups
)

var groupNames = [numGroups]string{
	"Identification",
	"CacheIdentification",
	"SystemControl",
	"TranslationTable",
	"Fault",
	"CacheMaintenance",
	"AddressTranslation",
	"Barrier",
	"TLBMaintenance",
	"PerformanceMonitor",
	"MemoryRemap",
	"VectorBase",
	"ContextID",
	"Diagnostic",
}

func (g Group) String() string {
	if g < 0 || g >= numGroups {
		return "unknown group"
	}
	return groupNames[g]
}

// Groups returns every group in order.
func Groups() []Group {
	g := make([]Group, numGroups)
	for i := range g {
		g[i] = Group(i)
	}
	return g
}

// GroupByName returns the group with the specified name. The comparison is
// not case sensitive.
func GroupByName(name string) (Group, bool) {
	for i, n := range groupNames {
		if strings.EqualFold(n, name) {
			return Group(i), true
		}
	}
	return 0, false
}
