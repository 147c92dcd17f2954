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

import "github.com/gosynacor/gosynacor/hardware/cpu/registers"

// State is a plain copy of the CPU's programmer visible state. Suitable for
// pretty printing or for comparison in tests.
type State struct {
	PC         uint16
	Registers  [registers.NumRegisters]uint16
	Stack      []uint16
	Halted     bool
	LastResult string
}

// State returns a copy of the current state of the CPU.
func (mc *CPU) State() State {
	st := State{
		PC:         mc.PC.Address(),
		Stack:      mc.Stack.Snapshot(),
		Halted:     mc.Halted,
		LastResult: mc.LastResult.String(),
	}
	for i := range st.Registers {
		st.Registers[i] = mc.Registers.Value(i)
	}
	return st
}
