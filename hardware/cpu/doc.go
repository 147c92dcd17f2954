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

// Package cpu emulates the processor of the synacor virtual machine. The
// processor executes instructions according to the word read from the address
// pointed to by the program counter. This word is the opcode and is looked up
// in the instruction table. The instruction definition for that opcode says
// how many operand words follow and how each operand is to be interpreted.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface and a terminal.Terminal.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// a program and that term is an instance of terminal.Terminal.
//
//	mc := cpu.NewCPU(mem, term)
//	mc.Halted = false
//
//	for !mc.Halted {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Operand words are interpreted in one of two roles. A value operand is either
// a literal (0 to 32767) or a reference to a register (32768 to 32775), in
// which case the value is the content of the register. A destination operand
// must be a reference to a register. Any other word is an error.
//
// All errors are fatal. The CPU halts and the error returned by
// ExecuteInstruction() is wrapped in the Fault pattern.
package cpu
