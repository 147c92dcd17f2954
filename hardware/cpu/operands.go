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

package cpu

import (
	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/hardware/cpu/registers"
	"github.com/gosynacor/gosynacor/hardware/memory"
)

// resolveValue interprets an operand word in the value role. Words below 32768
// are literals; words in the register range resolve to the contents of the
// register.
func (mc *CPU) resolveValue(w uint16) (uint16, error) {
	if w < memory.Size {
		return w, nil
	}
	if registers.IsRegister(w) {
		return mc.Registers.Value(int(w - registers.Base)), nil
	}
	return 0, curated.Errorf(InvalidOperand, w)
}

// resolveDestination interprets an operand word in the destination role. The
// word must refer to a register; the register index is returned. literals and
// words beyond the register range are both rejected.
func (mc *CPU) resolveDestination(w uint16) (int, error) {
	if registers.IsRegister(w) {
		return int(w - registers.Base), nil
	}
	return 0, curated.Errorf(InvalidRegisterTarget, w)
}

// resolveArithmetic resolves the operands of the three operand instructions:
// a destination followed by two values. resolution is left to right and stops
// at the first error.
func (mc *CPU) resolveArithmetic() (dst int, a uint16, b uint16, err error) {
	ops := mc.LastResult.Operands

	dst, err = mc.resolveDestination(ops[0])
	if err != nil {
		return 0, 0, 0, err
	}
	a, err = mc.resolveValue(ops[1])
	if err != nil {
		return 0, 0, 0, err
	}
	b, err = mc.resolveValue(ops[2])
	if err != nil {
		return 0, 0, 0, err
	}

	return dst, a, b, nil
}
