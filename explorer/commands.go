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
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/logger"
)

// list of command keywords.
const (
	cmdHelp   = "HELP"
	cmdList   = "LIST"
	cmdTree   = "TREE"
	cmdLookup = "LOOKUP"
	cmdEncode = "ENCODE"
	cmdDecode = "DECODE"
	cmdRead   = "READ"
	cmdWrite  = "WRITE"
	cmdSelect = "SELECT"
	cmdOps    = "OPS"
	cmdTick   = "TICK"
	cmdReset  = "RESET"
	cmdState  = "STATE"
	cmdCore   = "CORE"
	cmdLog    = "LOG"
	cmdQuit   = "QUIT"
)

// Help text for each command.
var Help = map[string]string{
	cmdHelp:   "List commands or show help for a single command",
	cmdList:   "List registers implemented by the core. [group]",
	cmdTree:   "Show registers implemented by the core as a tree. [group]",
	cmdLookup: "Describe a register. <name>",
	cmdEncode: "Encode the instruction that accesses a register. <name> [rN] [write] [thumb] [cond]",
	cmdDecode: "Name the register accessed by an instruction. [thumb] <word> | thumb <hw1> <hw2>",
	cmdRead:   "Read a register from the emulated register file. <name>",
	cmdWrite:  "Write a value to a register in the emulated register file. <name> <hex value>",
	cmdSelect: "Write the selector of a register and read the register. <name> <hex selector>",
	cmdOps:    "Show how many times an operation has been performed. <name>",
	cmdTick:   "Advance the cycle counter. <decimal cycles>",
	cmdReset:  "Reset the emulated register file",
	cmdState:  "Show the value of every register in the emulated register file",
	cmdCore:   "Show the core or change to a different core. [name]",
	cmdLog:    "Show log entries added since the last LOG command or the most recent entries. [decimal number]",
	cmdQuit:   "Leave the explorer",
}

// Commands returns the sorted list of command keywords.
func Commands() []string {
	l := make([]string, 0, len(Help))
	for k := range Help {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

// counts are decimal. register values and selectors are always hexadecimal
// and are parsed with parseHex()
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s is not a decimal number", s))
	}
	return int(v), nil
}

func required(tk *tokens, command string, what string) (string, error) {
	s, ok := tk.get()
	if !ok {
		return "", curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s requires %s", command, what))
	}
	return s, nil
}

// Exec runs a single command. The first return value is true if the command
// asks for the explorer to end. An empty input does nothing.
func (ex *Explorer) Exec(input string) (bool, error) {
	tk := tokeniseInput(input)

	command, ok := tk.get()
	if !ok {
		return false, nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return false, curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s is not a command", command))

	case cmdQuit, "EXIT":
		return true, nil

	case cmdHelp:
		if k, ok := tk.get(); ok {
			k = strings.ToUpper(k)
			h, ok := Help[k]
			if !ok {
				ex.print("no help for %s", k)
			} else {
				ex.print("%s: %s", k, h)
			}
		} else {
			ex.print("%s", strings.Join(Commands(), " "))
		}

	case cmdList:
		g, _ := tk.get()
		return false, ex.List(g)

	case cmdTree:
		g, _ := tk.get()
		return false, ex.Tree(g)

	case cmdLookup:
		name, err := required(tk, command, "a register name")
		if err != nil {
			return false, err
		}
		return false, ex.Lookup(name)

	case cmdEncode:
		name, err := required(tk, command, "a register name")
		if err != nil {
			return false, err
		}

		opts := EncodeOptions{Condition: cp15.AL}
		for tk.remaining() > 0 {
			arg, _ := tk.get()
			switch strings.ToUpper(arg) {
			case "WRITE", "MCR":
				opts.Write = true
			case "READ", "MRC":
				opts.Write = false
			case "THUMB":
				opts.Thumb = true
			default:
				if rt, err := cp15.RegisterByName(arg); err == nil {
					opts.Rt = rt
				} else if cond, err := cp15.ConditionByName(arg); err == nil {
					opts.Condition = cond
				} else {
					return false, curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("unrecognised %s option: %s", command, arg))
				}
			}
		}
		return false, ex.Encode(name, opts)

	case cmdDecode:
		thumb := false
		if arg, ok := tk.peek(); ok && strings.EqualFold(arg, "thumb") {
			thumb = true
			tk.get()
		}
		return false, ex.Decode(strings.Fields(tk.remainder()), thumb)

	case cmdRead:
		name, err := required(tk, command, "a register name")
		if err != nil {
			return false, err
		}
		return false, ex.Read(name)

	case cmdWrite:
		name, err := required(tk, command, "a register name")
		if err != nil {
			return false, err
		}

		// operations can be performed without a value
		var v uint64
		if s, ok := tk.get(); ok {
			v, err = parseHex(s, 32)
			if err != nil {
				return false, err
			}
		}
		return false, ex.Write(name, uint32(v))

	case cmdSelect:
		name, err := required(tk, command, "a register name")
		if err != nil {
			return false, err
		}
		s, err := required(tk, command, "a selector value")
		if err != nil {
			return false, err
		}
		sel, err := parseHex(s, 32)
		if err != nil {
			return false, err
		}
		return false, ex.Select(name, uint32(sel))

	case cmdOps:
		name, err := required(tk, command, "an operation name")
		if err != nil {
			return false, err
		}
		return false, ex.Operations(name)

	case cmdTick:
		s, err := required(tk, command, "a number of cycles")
		if err != nil {
			return false, err
		}
		n, err := parseCount(s)
		if err != nil {
			return false, err
		}
		ex.regs.Tick(n)

	case cmdReset:
		ex.regs.Reset()
		ex.print("register file reset")

	case cmdState:
		ex.State()

	case cmdCore:
		if name, ok := tk.get(); ok {
			core, err := cp15.CoreByName(name)
			if err != nil {
				return false, err
			}
			ex.SetCore(core)
		}
		ex.print("%s", ex.core)

	case cmdLog:
		s, ok := tk.get()
		if !ok {
			logger.WriteRecent(ex.out)
			break
		}
		n, err := parseCount(s)
		if err != nil {
			return false, err
		}
		logger.Tail(ex.out, n)
	}

	return false, nil
}
