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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that want callers to distinguish an error kind
// export the pattern as a const string. For example, the cp15 package exports:
//
//	const InvalidParameter = "cp15: invalid parameter: %s"
//
// and a caller can test for it with:
//
//	_, err := cp15.V2PCWPR(4)
//	if curated.Is(err, cp15.InvalidParameter) {
//		fmt.Println("index out of range")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is built by passing a curated error as one of the
// values to Errorf().
//
//	e := curated.Errorf("encode: %v", err)
//	curated.Has(e, cp15.InvalidParameter) // true
//	curated.Is(e, cp15.InvalidParameter)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() function normalises the error chain. Specifically, the chain
// does not contain duplicate adjacent parts. For the purposes of this package
// we think of chains as being composed of parts separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). For example:
//
//	part 1: part 2: part 3
//
// A chain of "cp15: cp15: invalid parameter: foo" is therefore reported as
// "cp15: invalid parameter: foo".
package curated
