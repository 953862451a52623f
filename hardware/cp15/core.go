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
	"strings"

	"github.com/jetsetilly/cp15/curated"
)

// Feature is a set of optional architecture features. A register that has a
// non-zero Requires field is only present when all of those features are
// implemented.
type Feature uint32

// List of optional features.
const (
	// registers that are always present have no requirements
	Mandatory Feature = 0

	SecurityExtensions Feature = 1 << iota
	MultiprocessingExtensions
	PerformanceMonitors

	// the Fast Context Switch Extension is deprecated in ARMv7 and not
	// implemented by most cores. FCSEIDR is only usable if it is
	FCSE

	// configuration base address register. implementation defined
	ConfigurationBase

	// the cache and TLB direct access registers of the Cortex-A5
	CortexA5Diagnostics
)

var featureNames = []struct {
	f    Feature
	name string
}{
	{f: SecurityExtensions, name: "Security"},
	{f: MultiprocessingExtensions, name: "Multiprocessing"},
	{f: PerformanceMonitors, name: "PerformanceMonitors"},
	{f: FCSE, name: "FCSE"},
	{f: ConfigurationBase, name: "ConfigurationBase"},
	{f: CortexA5Diagnostics, name: "CortexA5Diagnostics"},
}

func (f Feature) String() string {
	if f == Mandatory {
		return "Mandatory"
	}
	s := make([]string, 0, len(featureNames))
	for _, n := range featureNames {
		if f&n.f == n.f {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "+")
}

// Has returns true if all features in g are also in f.
func (f Feature) Has(g Feature) bool {
	return f&g == g
}

// FeatureByName returns the feature with the specified name. The comparison is
// not case sensitive.
func FeatureByName(name string) (Feature, bool) {
	for _, n := range featureNames {
		if strings.EqualFold(n.name, name) {
			return n.f, true
		}
	}
	return Mandatory, false
}

// Core describes the optional features implemented by a processor.
type Core struct {
	Name     string
	Features Feature
}

// List of known cores.
var (
	// a core with no optional features
	ARMv7A = Core{
		Name:     "ARMv7-A",
		Features: Mandatory,
	}

	// "Cortex-A5 MPCore Technical Reference Manual", section 4.2
	CortexA5 = Core{
		Name:     "Cortex-A5",
		Features: SecurityExtensions | MultiprocessingExtensions | PerformanceMonitors | ConfigurationBase | CortexA5Diagnostics,
	}

	// a uniprocessor core. no multiprocessing extensions
	CortexA8 = Core{
		Name:     "Cortex-A8",
		Features: SecurityExtensions | PerformanceMonitors,
	}

	CortexA9 = Core{
		Name:     "Cortex-A9",
		Features: SecurityExtensions | MultiprocessingExtensions | PerformanceMonitors | ConfigurationBase,
	}
)

// Cores returns the list of known cores.
func Cores() []Core {
	return []Core{ARMv7A, CortexA5, CortexA8, CortexA9}
}

// CoreByName returns the known core with the specified name. The comparison
// is not case sensitive.
func CoreByName(name string) (Core, error) {
	for _, c := range Cores() {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Core{}, curated.Errorf(UnsupportedRegister, fmt.Sprintf("no core named %s", name))
}

func (c Core) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Features)
}

// Supports returns true if the core implements the features required by the
// descriptor.
func (c Core) Supports(d Descriptor) bool {
	return c.Features.Has(d.Requires)
}

// Check returns an UnsupportedRegister error if the core does not implement the
// features required by the descriptor.
func (c Core) Check(d Descriptor) error {
	if c.Supports(d) {
		return nil
	}
	return curated.Errorf(UnsupportedRegister, fmt.Sprintf("%s requires %s which is not implemented by %s",
		d.Name, d.Requires&^c.Features, c.Name))
}

// Resolve a register name for the core. Returns an UnsupportedRegister error
// if the name is not recognised or if the core does not implement the
// register.
func (c Core) Resolve(name string) (Descriptor, error) {
	d, ok := ByName(name)
	if !ok {
		return Descriptor{}, curated.Errorf(UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}
	if err := c.Check(d); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
