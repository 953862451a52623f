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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// commandLine is a stack of groups of key/value pairs. each group is the
// result of parsing a single preferences string
type commandLine struct {
	crit   sync.Mutex
	groups []map[string]Value
}

var cmdline commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.groups)
}

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The string is a list of key/value pairs separated by semi-colons.
// The key and value are separated by a double colon:
//
//	hardware.cp15.model::Cortex-A9; hardware.cp15.fcse::true
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	grp := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	cmdline.groups = append(cmdline.groups, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the unused preferences of the group as a preferences string. The
// keys are sorted.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.groups) == 0 {
		return ""
	}

	top := cmdline.groups[len(cmdline.groups)-1]
	cmdline.groups = cmdline.groups[:len(cmdline.groups)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s::%v", k, top[k])
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent group.
// The value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.groups) == 0 {
		return false, nil
	}

	top := cmdline.groups[len(cmdline.groups)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, nil
}
