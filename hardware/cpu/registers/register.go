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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 8

// Base is the raw operand value that refers to the first register. Raw values
// from Base to Base+NumRegisters-1 refer to the registers in order.
const Base = 32768

// Register is a single general purpose register.
type Register struct {
	value uint16
	label string
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// File is the bank of general purpose registers.
type File struct {
	regs [NumRegisters]Register
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are zero.
func NewFile() File {
	var f File
	for i := range f.regs {
		f.regs[i].label = fmt.Sprintf("R%d", i)
	}
	return f
}

func (f File) String() string {
	s := make([]string, len(f.regs))
	for i := range f.regs {
		s[i] = f.regs[i].String()
	}
	return strings.Join(s, " ")
}

// Reset all registers to zero.
func (f *File) Reset() {
	for i := range f.regs {
		f.regs[i].Load(0)
	}
}

// Register returns the register at index idx. The index must be less than
// NumRegisters.
func (f *File) Register(idx int) *Register {
	return &f.regs[idx]
}

// Value returns the value of the register at index idx.
func (f File) Value(idx int) uint16 {
	return f.regs[idx].value
}

// Load value into the register at index idx.
func (f *File) Load(idx int, val uint16) {
	f.regs[idx].Load(val)
}

// IsRegister returns true if the raw word refers to a register.
func IsRegister(word uint16) bool {
	return word >= Base && word < Base+NumRegisters
}
