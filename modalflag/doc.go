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

// Package modalflag wraps the flag package from the standard library. It
// handles program modes, each of which can have its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which takes
// no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("list", "lookup", "encode")
//	_, _ = md.Parse()
//
// A mode is a special argument that changes what the program does and which
// flags it expects. The first mode added with AddSubModes() is the default.
// After Parse() the selected mode can be found with Mode():
//
//	switch md.Mode() {
//	case "ENCODE":
//		md.NewMode()
//		rt := md.AddInt("rt", 0, "core register")
//		write := md.AddBool("write", false, "encode MCR")
//		switch r, err := md.Parse(); r {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		encode(md.RemainingArgs(), *rt, *write)
//	}
//
// Mode comparisons are case insensitive and modes are reported in upper case.
// Modes can be nested to any depth. Path() returns the complete list of modes
// selected so far.
//
// Values that are always hexadecimal, such as register values, can be added
// with AddHex(). The 0x prefix is optional for these flags.
package modalflag
