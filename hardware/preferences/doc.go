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

// Package preferences holds the preferences that describe the emulated
// hardware. The CorePreferences type selects the core variant and allows the
// optional features of the core to be overridden.
//
// The preferences are stored in the global preferences file under keys
// beginning with "hardware.cp15". For example:
//
//	hardware.cp15.model :: Cortex-A9
//	hardware.cp15.feature.fcse :: true
//	hardware.cp15.feature.security :: auto
//
// A feature override is one of "auto", "true" or "false". The "auto" value
// uses whatever the model implements.
package preferences
