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

// Package explorer presents the CP15 register table for a core. Registers can
// be listed and described, the MRC and MCR instructions that access them can
// be encoded and decoded, and an emulated register file can be read and
// written.
//
// The same functions serve the single shot command line modes and the
// interactive session started with Run(). The interactive session uses the
// readline package for line editing, history and tab completion.
package explorer
