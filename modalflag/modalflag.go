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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments that are divided into modes, each with
// its own set of flags. The Output field should be set before calling Parse()
// or help messages will go to os.Stdout.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// flags for the current mode. a new flagset is created by NewArgs() and
	// NewMode()
	flags *flag.FlagSet

	// arguments as given to NewArgs(). argsIdx is advanced past each mode
	// selector as it is consumed
	args    []string
	argsIdx int

	// sub-modes available to the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the modes selected so far. never reset
	path []string

	// arguments left over after the most recent call to Parse()
	remaining []string

	// text printed after the flag summary when help is requested
	additionalHelp string

	parsed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs resets the argument list. The next call to Parse() will begin at
// the first argument.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = nil
	md.remaining = nil
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp sets text to be printed after the flag summary.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the most recent call
// to NewArgs() or NewMode(). This is true even if Parse() failed.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

// Parse the arguments for the current mode. Typical usage:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// When sub-modes have been added the first non-flag argument is compared
// (case insensitively) to the list. A match is consumed and becomes the
// current mode. Without a match the default sub-mode is selected and the
// argument is left in place.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	out := md.Output
	if out == nil {
		out = os.Stdout
	}

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(out, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// unrecognised flags may belong to the default sub-mode. the
		// arguments are left in place for the next call to Parse()
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		md.remaining = md.args[md.argsIdx:]
		return ParseContinue, nil
	}

	md.remaining = md.flags.Args()

	if len(md.subModes) > 0 {
		// flags.Parse() stops at the first non-flag so the mode selector, if
		// present, is the first of the remaining arguments
		md.argsIdx = len(md.args) - len(md.remaining)

		mode := md.subModes[0]
		if len(md.remaining) > 0 {
			arg := strings.ToUpper(md.remaining[0])
			for _, m := range md.subModes {
				if m == arg {
					mode = m
					md.argsIdx++
					md.remaining = md.remaining[1:]
					break // for loop
				}
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the numbered argument from RemainingArgs(). Empty if there
// is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddSubModes adds to the list of modes that can be selected by the next call
// to Parse(). The first sub-mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list, making it the
// default.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// hexValue is a 32bit flag value printed in hexadecimal. the value can be
// given with or without the 0x prefix.
type hexValue uint32

func (h *hexValue) Set(s string) error {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return err
	}
	*h = hexValue(v)
	return nil
}

func (h *hexValue) String() string {
	return "0x" + strconv.FormatUint(uint64(*h), 16)
}

// AddHex flag for the next call to Parse(). The value is always interpreted
// as hexadecimal.
func (md *Modes) AddHex(name string, value uint32, usage string) *uint32 {
	v := value
	md.flags.Var((*hexValue)(&v), name, usage)
	return &v
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
