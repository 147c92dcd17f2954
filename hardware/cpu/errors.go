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

import "github.com/gosynacor/gosynacor/hardware/cpu/stack"

// Sentinal error patterns. All errors returned by ExecuteInstruction() are
// wrapped in the Fault pattern, which records the address and opcode of the
// instruction that failed.
const (
	Fault = "cpu: fault at %#04x (opcode %d %s): %v"

	InvalidOpcode         = "invalid opcode (%d)"
	InvalidOperand        = "invalid operand (%d)"
	InvalidRegisterTarget = "operand is not a register (%d)"
	DivisionByZero        = "division by zero"
	NoReturnAddress       = "no return address: %v"
	InputExhausted        = "input exhausted"
	TerminalError         = "terminal: %v"

	// StackUnderflow is the pattern used by the stack package. Repeated here
	// for convenience.
	StackUnderflow = stack.Underflow
)
