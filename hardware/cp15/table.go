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
	"sort"
	"strings"
)

// every fixed descriptor in declaration order. populated by define() during
// package variable initialisation
var table []Descriptor

// every family. members are generated when required
var families []family

// family is implemented by OffsetInOp2 and SelectorInCrm
type family interface {
	members() []Descriptor
}

func define(d Descriptor) Descriptor {
	table = append(table, d)
	return d
}

func defineFamily[F family](f F) F {
	families = append(families, f)
	return f
}

// index of descriptors by name and by address key. built in init() after
// all package variables have been initialised
var (
	byName    map[string]Descriptor
	byAddress map[uint16][]Descriptor
	all       []Descriptor
)

func init() {
	all = make([]Descriptor, 0, len(table))
	all = append(all, table...)
	for _, f := range families {
		all = append(all, f.members()...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Group != all[j].Group {
			return all[i].Group < all[j].Group
		}
		if all[i].addr != all[j].addr {
			return all[i].addr.Key() < all[j].addr.Key()
		}
		return all[i].Name < all[j].Name
	})

	byName = make(map[string]Descriptor, len(all))
	byAddress = make(map[uint16][]Descriptor, len(all))

	for _, d := range all {
		n := strings.ToUpper(d.Name)
		if _, ok := byName[n]; ok {
			panic(fmt.Sprintf("cp15: duplicate register name: %s", d.Name))
		}
		byName[n] = d
		byAddress[d.addr.Key()] = append(byAddress[d.addr.Key()], d)
	}

	// registers that share an address must name each other as an alias
	for _, l := range byAddress {
		if len(l) == 1 {
			continue
		}
		if len(l) > 2 || l[0].AliasOf != l[1].Name || l[1].AliasOf != l[0].Name {
			panic(fmt.Sprintf("cp15: undeclared alias at %s", l[0].addr))
		}
	}
}

// All returns every descriptor, including family members, ordered by group
// and then by address. The returned slice is a copy.
func All() []Descriptor {
	c := make([]Descriptor, len(all))
	copy(c, all)
	return c
}

// InGroup returns every descriptor in the group, including family members,
// ordered by address.
func InGroup(g Group) []Descriptor {
	var l []Descriptor
	for _, d := range all {
		if d.Group == g {
			l = append(l, d)
		}
	}
	return l
}

// ByName returns the descriptor with the specified name. The comparison is
// not case sensitive. Family members are found by their full name, for
// example V2POWPR2 or DTLBIASID.
func ByName(name string) (Descriptor, bool) {
	d, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	return d, ok
}

// ByAddress returns every descriptor with the specified address. The list
// will be empty if the address is unused and will have more than one entry
// if the address is aliased.
func ByAddress(a Address) []Descriptor {
	l := byAddress[a.Key()]
	c := make([]Descriptor, len(l))
	copy(c, l)
	return c
}
