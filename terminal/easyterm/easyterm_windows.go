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

//go:build windows

package easyterm

import (
	"errors"
	"os"
)

// IsTerminal always returns false on this platform.
func IsTerminal(_ *os.File) bool {
	return false
}

// Geometry is not supported on this platform.
func Geometry(_ *os.File) (int, int, error) {
	return 0, 0, errors.New("easyterm: geometry not supported")
}
