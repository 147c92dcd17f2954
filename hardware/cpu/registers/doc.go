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

// Package registers implements the general purpose registers and the program
// counter of the CPU.
//
// The eight registers are addressed by raw operand words in the range
// Base to Base+7. The File type holds all eight and is indexed from zero:
//
//	f := registers.NewFile()
//	f.Load(word-registers.Base, 10)
//
// Deciding whether a raw word is a literal or a register reference is the
// job of the CPU. The IsRegister() function is provided to help.
package registers
