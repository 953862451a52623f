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
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/cp15/test"
)

func newEnvironment(t *testing.T) (environment, *test.Writer) {
	t.Helper()
	w := &test.Writer{}
	return environment{
		out:       w,
		prefsFile: filepath.Join(t.TempDir(), "preferences"),
	}, w
}

func TestEncodeMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"encode", "midr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "ee100f10  mrc p15, 0, r0, c0, c0, 0\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode", "-rt", "lr", "-write", "vbar"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "ee0cef10  mcr p15, 0, lr, c12, c0, 0\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode", "-cond", "ne", "midr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "1e100f10  mrcne p15, 0, r0, c0, c0, 0\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode", "-thumb", "midr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "ee10 0f10  mrc p15, 0, r0, c0, c0, 0\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode", "-rt", "pc", "midr"}, env), exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in ENCODE mode: cp15: invalid parameter"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode"}, env), exitMode)
}

func TestDecodeMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"decode", "ee190f3d"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "mrc p15, 0, r0, c9, c13, 1  PMCCFILTR/PMXEVTYPER\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"DECODE", "-thumb", "ee10", "0f10"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "mrc p15, 0, r0, c0, c0, 0  MIDR\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"decode", "e1a00000"}, env), exitMode)
}

func TestLookupMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"lookup", "dtlbiall"}, env), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "DTLBIALL [p15, 0, c8, c6, 0]"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"lookup", "nosuchregister"}, env), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cp15: unsupported register"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"lookup", "midr", "ctr"}, env), exitMode)
}

func TestListMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"list", "-group", "barrier"}, env), exitOK)
	test.ExpectEquality(t, len(w.Lines()), 4)

	// the default mode is LIST
	w.Clear()
	test.ExpectEquality(t, launch([]string{"-group", "barrier"}, env), exitOK)
	test.ExpectEquality(t, len(w.Lines()), 4)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"list", "-tree", "-group", "barrier"}, env), exitOK)
	test.ExpectEquality(t, w.Lines()[0], "Cortex-A9")

	// security extensions are needed for SCR
	w.Clear()
	test.ExpectEquality(t, launch([]string{"list", "-core", "armv7-a", "-group", "systemcontrol"}, env), exitOK)
	test.ExpectFailure(t, strings.Contains(w.String(), "  SCR "), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"list", "-core", "cortex-a9", "-group", "systemcontrol"}, env), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "  SCR "), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"list", "-core", "cortex-a15"}, env), exitMode)
}

func TestReadMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"read", "midr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "MIDR = 414fc091\n")

	// selector values are hexadecimal and zero is a valid selector
	w.Clear()
	test.ExpectEquality(t, launch([]string{"read", "-select", "0", "ccsidr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "CCSIDR[0] = e01fe019\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"read", "-select", "0x2", "ccsidr"}, env), exitOK)
	test.ExpectEquality(t, w.String(), "CCSIDR[2] = e07fe03a\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"read", "-select", "xyz", "ccsidr"}, env), exitMode)

	// MIDR has no selector
	w.Clear()
	test.ExpectEquality(t, launch([]string{"read", "-select", "1", "midr"}, env), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cp15: invalid parameter"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"read"}, env), exitMode)
	w.Clear()
	test.ExpectEquality(t, launch([]string{"read", "midr", "ctr"}, env), exitMode)
}

func TestPrefsFlag(t *testing.T) {
	env, w := newEnvironment(t)

	// the default core is the Cortex-A9 which has the security extensions
	test.ExpectEquality(t, launch([]string{"encode", "scr"}, env), exitOK)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-prefs", "hardware.cp15.model::ARMv7-A", "encode", "scr"}, env), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cp15: unsupported register"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-prefs", "hardware.cp15.model::ARMv7-A; hardware.cp15.feature.security::true", "encode", "scr"}, env), exitOK)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-prefs", "hardware.cp15.model::Cortex-A15", "encode", "scr"}, env), exitArguments)
}

func TestLogFlag(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"-log", "-prefs", "no.such.key::1", "encode", "midr"}, env), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unused preferences: no.such.key::1"), w.String())
}

func TestHelp(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"-help"}, env), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: LIST, LOOKUP, ENCODE, DECODE, READ, EXPLORE, VERSION"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"encode", "-help"}, env), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Usage: for ENCODE mode"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-log=maybe"}, env), exitMode)
}

func TestVersionMode(t *testing.T) {
	env, w := newEnvironment(t)
	test.ExpectEquality(t, launch([]string{"version"}, env), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "cp15 "), w.String())
}
