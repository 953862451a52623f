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

// Package prefs facilitates the storage of preference values to disk.
//
// A preference value is one of the types Bool, String or Int. Values are
// added to a Disk instance with a unique key:
//
//	dsk, _ := prefs.NewDisk(path)
//	var model prefs.String
//	dsk.Add("hardware.cp15.model", &model)
//	dsk.Load()
//
// The preferences file is a text file of key/value pairs separated by " :: ".
// More than one Disk instance can share the same file.
//
// Values can also be specified on the command line. The command line stack
// holds groups of key/value pairs, which take priority over the file when a
// Disk is loaded:
//
//	prefs.PushCommandLineStack("hardware.cp15.model::Cortex-A5; hardware.cp15.fcse::true")
//
// Values on the stack are used once.
package prefs
