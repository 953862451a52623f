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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/hardware/preferences"
	"github.com/jetsetilly/cp15/prefs"
	"github.com/jetsetilly/cp15/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewCorePreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	c, err := p.Core()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, cp15.CortexA9)
}

func TestOverrides(t *testing.T) {
	p, err := preferences.NewCorePreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Model.Set("cortex-a8"))
	test.ExpectSuccess(t, p.FCSE.Set(preferences.FeatureEnable))
	test.ExpectSuccess(t, p.Security.Set(preferences.FeatureDisable))

	c, err := p.Core()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Name, cp15.CortexA8.Name)
	test.ExpectSuccess(t, c.Features.Has(cp15.FCSE))
	test.ExpectFailure(t, c.Features.Has(cp15.SecurityExtensions))
	test.ExpectSuccess(t, c.Features.Has(cp15.PerformanceMonitors))

	test.ExpectSuccess(t, c.Supports(cp15.FCSEIDR))
	test.ExpectFailure(t, c.Supports(cp15.MVBAR))
}

func TestInvalidValues(t *testing.T) {
	p, err := preferences.NewCorePreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Model.Set("Cortex-A15"))
	test.ExpectEquality(t, p.Model.String(), cp15.CortexA9.Name)

	test.ExpectFailure(t, p.FCSE.Set("maybe"))
	test.ExpectEquality(t, p.FCSE.String(), preferences.FeatureAuto)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewCorePreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Model.Set(cp15.CortexA5.Name))
	test.ExpectSuccess(t, p.PerformanceMonitors.Set(preferences.FeatureDisable))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.cp15.model :: Cortex-A5\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.cp15.feature.pmu :: false\n"))

	q, err := preferences.NewCorePreferences(fn)
	test.DemandSuccess(t, err)
	c, err := q.Core()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Name, cp15.CortexA5.Name)
	test.ExpectFailure(t, c.Features.Has(cp15.PerformanceMonitors))
	test.ExpectSuccess(t, c.Features.Has(cp15.CortexA5Diagnostics))
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("hardware.cp15.model::ARMv7-A; hardware.cp15.feature.security::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewCorePreferences(fn)
	test.DemandSuccess(t, err)

	c, err := p.Core()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Name, cp15.ARMv7A.Name)
	test.ExpectEquality(t, c.Features, cp15.SecurityExtensions)
}
