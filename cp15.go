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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/cp15/explorer"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/hardware/preferences"
	"github.com/jetsetilly/cp15/logger"
	"github.com/jetsetilly/cp15/modalflag"
	"github.com/jetsetilly/cp15/prefs"
	"github.com/jetsetilly/cp15/terminal/easyterm"
	"github.com/jetsetilly/cp15/version"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

// environment in which the program runs
type environment struct {
	out io.Writer

	// whether output can be styled with ANSI sequences
	styled bool

	// width of the terminal. zero if output is not a terminal
	width int

	// preferences file. the default file is used if the string is empty
	prefsFile string
}

func main() {
	env := environment{
		out:    os.Stdout,
		styled: easyterm.IsTerminal(os.Stdout),
	}
	if env.styled {
		env.width, _, _ = easyterm.Geometry(os.Stdout)
	}
	os.Exit(launch(os.Args[1:], env))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(args []string, env environment) int {
	md := &modalflag.Modes{Output: env.out}
	md.NewArgs(args)
	md.AddSubModes("LOOKUP", "ENCODE", "DECODE", "READ", "EXPLORE", "VERSION")
	md.AddDefaultSubMode("LIST")
	log := md.AddBool("log", false, "echo log to stdout")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(env.out, "* error: %v\n", err)
		return exitArguments
	}

	if *log {
		if env.styled {
			logger.SetEcho(logger.NewColorizer(env.out))
		} else {
			logger.SetEcho(env.out)
		}
		defer logger.SetEcho(nil)
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "cp15", "unused preferences: %s", unused)
			}
		}()
	}

	corePrefs, err := preferences.NewCorePreferences(env.prefsFile)
	if err != nil {
		fmt.Fprintf(env.out, "* error: %v\n", err)
		return exitArguments
	}
	core, err := corePrefs.Core()
	if err != nil {
		fmt.Fprintf(env.out, "* error: %v\n", err)
		return exitArguments
	}

	ex := explorer.NewExplorer(core, env.out)
	ex.SetStyled(env.styled)
	ex.SetWidth(env.width)

	switch md.Mode() {
	case "LIST":
		err = list(md, ex)
	case "LOOKUP":
		err = lookup(md, ex)
	case "ENCODE":
		err = encode(md, ex)
	case "DECODE":
		err = decode(md, ex)
	case "READ":
		err = read(md, ex)
	case "EXPLORE":
		err = explore(md, ex, env)
	case "VERSION":
		fmt.Fprintln(env.out, version.String())
	}

	if err != nil {
		fmt.Fprintf(env.out, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

func list(md *modalflag.Modes, ex *explorer.Explorer) error {
	md.NewMode()
	group := md.AddString("group", "", fmt.Sprintf("list a single group: %s", groupList()))
	coreName := md.AddString("core", "", fmt.Sprintf("list registers for a core: %s", coreList()))
	tree := md.AddBool("tree", false, "show registers as a tree of groups")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *coreName != "" {
		core, err := cp15.CoreByName(*coreName)
		if err != nil {
			return err
		}
		ex.SetCore(core)
	}

	if *tree {
		return ex.Tree(*group)
	}
	return ex.List(*group)
}

func lookup(md *modalflag.Modes, ex *explorer.Explorer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("register name required for %s mode", md)
	case 1:
		return ex.Lookup(md.GetArg(0))
	}
	return fmt.Errorf("too many arguments for %s mode", md)
}

func encode(md *modalflag.Modes, ex *explorer.Explorer) error {
	md.NewMode()
	rt := md.AddString("rt", "r0", "transfer register")
	write := md.AddBool("write", false, "encode MCR rather than MRC")
	thumb := md.AddBool("thumb", false, "use the T1 encoding")
	cond := md.AddString("cond", "al", "condition code (ARM encoding only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts := explorer.EncodeOptions{
		Write: *write,
		Thumb: *thumb,
	}
	opts.Rt, err = cp15.RegisterByName(*rt)
	if err != nil {
		return err
	}
	opts.Condition, err = cp15.ConditionByName(*cond)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("register name required for %s mode", md)
	case 1:
		return ex.Encode(md.GetArg(0), opts)
	}
	return fmt.Errorf("too many arguments for %s mode", md)
}

func decode(md *modalflag.Modes, ex *explorer.Explorer) error {
	md.NewMode()
	thumb := md.AddBool("thumb", false, "decode the T1 encoding")
	md.AdditionalHelp("values are hexadecimal. a thumb instruction can be given as one word or as two halfwords")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("instruction required for %s mode", md)
	}
	return ex.Decode(md.RemainingArgs(), *thumb)
}

func read(md *modalflag.Modes, ex *explorer.Explorer) error {
	md.NewMode()
	selector := md.AddHex("select", 0, "value written to the selector register before reading")
	md.AdditionalHelp("registers are read from an emulated register file in its reset state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("register name required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// a selector of zero is meaningful so the flag must be checked for
	// having been set
	var selected bool
	md.Visit(func(flag string) {
		selected = selected || flag == "select"
	})

	if selected {
		return ex.Select(md.GetArg(0), *selector)
	}
	return ex.Read(md.GetArg(0))
}

func explore(md *modalflag.Modes, ex *explorer.Explorer, env environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	exPrefs, err := explorer.NewPreferences(env.prefsFile)
	if err != nil {
		return err
	}
	cfg, err := exPrefs.Config()
	if err != nil {
		return err
	}

	return ex.Run(cfg)
}

func groupList() string {
	var s []string
	for _, g := range cp15.Groups() {
		s = append(s, g.String())
	}
	return strings.Join(s, ", ")
}

func coreList() string {
	var s []string
	for _, c := range cp15.Cores() {
		s = append(s, c.Name)
	}
	return strings.Join(s, ", ")
}
