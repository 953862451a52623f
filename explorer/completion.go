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
	"strings"

	"github.com/chzyer/readline"
	"github.com/jetsetilly/cp15/hardware/cp15"
)

// registerNames returns the names of every register implemented by the core.
// names are lower case to match the rest of the completion tree
func (ex *Explorer) registerNames(string) []string {
	var n []string
	for _, d := range cp15.All() {
		if ex.core.Supports(d) {
			n = append(n, strings.ToLower(d.Name))
		}
	}
	return n
}

func groupNames(string) []string {
	var n []string
	for _, g := range cp15.Groups() {
		n = append(n, strings.ToLower(g.String()))
	}
	return n
}

func coreNames(string) []string {
	var n []string
	for _, c := range cp15.Cores() {
		n = append(n, strings.ToLower(c.Name))
	}
	return n
}

// Completer returns the tab completion tree for the explorer commands.
func (ex *Explorer) Completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	for _, c := range Commands() {
		k := strings.ToLower(c)
		switch c {
		case cmdLookup, cmdEncode, cmdRead, cmdWrite, cmdSelect, cmdOps:
			items = append(items, readline.PcItem(k, readline.PcItemDynamic(ex.registerNames)))
		case cmdList, cmdTree:
			items = append(items, readline.PcItem(k, readline.PcItemDynamic(groupNames)))
		case cmdCore:
			items = append(items, readline.PcItem(k, readline.PcItemDynamic(coreNames)))
		case cmdDecode:
			items = append(items, readline.PcItem(k, readline.PcItem("thumb")))
		case cmdHelp:
			var h []readline.PrefixCompleterInterface
			for _, c := range Commands() {
				h = append(h, readline.PcItem(strings.ToLower(c)))
			}
			items = append(items, readline.PcItem(k, h...))
		default:
			items = append(items, readline.PcItem(k))
		}
	}

	return readline.NewPrefixCompleter(items...)
}
