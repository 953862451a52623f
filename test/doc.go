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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectInequality(), ExpectSuccess() and
// ExpectFailure() functions report failure with t.Errorf() and allow the test
// to continue. The Demand*() variants report with t.Fatalf() and stop the
// test.
//
// ExpectSuccess() and ExpectFailure() are intended to be used with boolean
// and error values. A nil error is success, a non-nil error is failure.
//
// Each function accepts an optional list of tags. Tags are prefixed to any
// failure message and are useful for identifying the row of a table driven
// test.
package test
