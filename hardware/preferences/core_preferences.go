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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/prefs"
	"github.com/jetsetilly/cp15/resources"
)

// List of valid values for a feature override.
const (
	FeatureAuto    = "auto"
	FeatureEnable  = "true"
	FeatureDisable = "false"
)

// CorePreferences selects the core variant to use when checking and emulating
// registers.
type CorePreferences struct {
	dsk *prefs.Disk

	// the name of one of the cores returned by cp15.Cores()
	Model prefs.String

	// overrides for the optional features of the model
	Security            prefs.String
	Multiprocessing     prefs.String
	PerformanceMonitors prefs.String
	FCSE                prefs.String
	ConfigurationBase   prefs.String
	CortexA5Diagnostics prefs.String
}

type override struct {
	key     string
	value   *prefs.String
	feature cp15.Feature
}

func (p *CorePreferences) overrides() []override {
	return []override{
		{key: "hardware.cp15.feature.security", value: &p.Security, feature: cp15.SecurityExtensions},
		{key: "hardware.cp15.feature.multiprocessing", value: &p.Multiprocessing, feature: cp15.MultiprocessingExtensions},
		{key: "hardware.cp15.feature.pmu", value: &p.PerformanceMonitors, feature: cp15.PerformanceMonitors},
		{key: "hardware.cp15.feature.fcse", value: &p.FCSE, feature: cp15.FCSE},
		{key: "hardware.cp15.feature.cbar", value: &p.ConfigurationBase, feature: cp15.ConfigurationBase},
		{key: "hardware.cp15.feature.a5diagnostics", value: &p.CortexA5Diagnostics, feature: cp15.CortexA5Diagnostics},
	}
}

func (p *CorePreferences) String() string {
	return p.dsk.String()
}

// NewCorePreferences is the preferred method of initialisation for the
// CorePreferences type. The preferences are loaded from the file at the
// specified path. If the path is empty then the default preferences file is
// used.
//
// Values on the prefs command line stack take priority over the values in the
// file.
func NewCorePreferences(pth string) (*CorePreferences, error) {
	p := &CorePreferences{}

	p.Model.SetHookPre(func(v prefs.Value) error {
		_, err := cp15.CoreByName(v.(string))
		return err
	})
	for _, o := range p.overrides() {
		o.value.SetHookPre(validateOverride)
	}

	p.SetDefaults()

	if pth == "" {
		var err error
		pth, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cp15.model", &p.Model)
	if err != nil {
		return nil, err
	}
	for _, o := range p.overrides() {
		err = p.dsk.Add(o.key, o.value)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func validateOverride(v prefs.Value) error {
	switch strings.ToLower(v.(string)) {
	case FeatureAuto, FeatureEnable, FeatureDisable:
		return nil
	}
	return fmt.Errorf("feature override must be %s, %s or %s", FeatureAuto, FeatureEnable, FeatureDisable)
}

// SetDefaults reverts all settings to default values.
func (p *CorePreferences) SetDefaults() {
	p.Model.Set(cp15.CortexA9.Name)
	for _, o := range p.overrides() {
		o.value.Set(FeatureAuto)
	}
}

// Core returns the core described by the preferences. The features of the
// model are changed by any override that is not "auto".
func (p *CorePreferences) Core() (cp15.Core, error) {
	c, err := cp15.CoreByName(p.Model.String())
	if err != nil {
		return cp15.Core{}, err
	}

	for _, o := range p.overrides() {
		switch strings.ToLower(o.value.String()) {
		case FeatureEnable:
			c.Features |= o.feature
		case FeatureDisable:
			c.Features &^= o.feature
		}
	}

	return c, nil
}

// Load current core preferences from disk.
func (p *CorePreferences) Load() error {
	return p.dsk.Load()
}

// Save current core preferences to disk.
func (p *CorePreferences) Save() error {
	return p.dsk.Save()
}
