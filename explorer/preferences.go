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

package explorer

import (
	"fmt"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/prefs"
	"github.com/jetsetilly/cp15/resources"
)

// Preferences for the interactive session.
type Preferences struct {
	dsk *prefs.Disk

	// whether command history is saved between sessions
	History prefs.Bool

	// the number of history entries to keep
	HistoryLimit prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the file at the
// specified path. If the path is empty then the default preferences file is
// used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.HistoryLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("history limit must be at least one")
		}
		return nil
	})

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
	err = p.dsk.Add("explorer.history", &p.History)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("explorer.historyLimit", &p.HistoryLimit)
	if err != nil {
		return nil, err
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

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.History.Set(true)
	p.HistoryLimit.Set(500)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns the session configuration described by the preferences.
func (p *Preferences) Config() (Config, error) {
	cfg := Config{
		HistoryLimit: p.HistoryLimit.Get().(int),
	}
	if p.History.Get().(bool) {
		var err error
		cfg.HistoryFile, err = resources.JoinPath("explorer", "history")
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
