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

package cp15

// Sentinal error patterns. Test for them with curated.Is() or curated.Has().
const (
	// an index or selector is outside of the legal set for a family, or a
	// value cannot be placed in an instruction field. values are never
	// clamped
	InvalidParameter = "cp15: invalid parameter: %s"

	// the register is not recognised or is not implemented by the core
	UnsupportedRegister = "cp15: unsupported register: %s"
)
