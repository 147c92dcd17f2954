// This file is part of Gosynacor.
//
// Gosynacor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gosynacor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gosynacor.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf() but the formatting is
// deferred until the Error() function is called. The pattern is retained so
// that errors can be identified without string comparisons:
//
//	err := curated.Errorf(cpu.InvalidOpcode, 99)
//
//	if curated.Is(err, cpu.InvalidOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is formed by passing a curated error as one of
// the values of another curated error:
//
//	f := curated.Errorf(cpu.Fault, pc, opcode, mnemonic, err)
//
//	if curated.Has(f, cpu.InvalidOpcode) {
//		fmt.Println("true")
//	}
//
// Is() would be false for f because the outermost pattern is cpu.Fault.
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '. The Error() function removes
// adjacent duplicate parts so that wrapping an error in a pattern that shares
// a prefix with the wrapped error does not produce messages like:
//
//	programloader: programloader: odd length
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that raises them.
package curated
