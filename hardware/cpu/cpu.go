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
	"fmt"
	"io"

	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/hardware/cpu/execution"
	"github.com/gosynacor/gosynacor/hardware/cpu/instructions"
	"github.com/gosynacor/gosynacor/hardware/cpu/registers"
	"github.com/gosynacor/gosynacor/hardware/cpu/stack"
	"github.com/gosynacor/gosynacor/hardware/memory"
	"github.com/gosynacor/gosynacor/hardware/memory/cpubus"
	"github.com/gosynacor/gosynacor/terminal"
)

// characters read from the terminal that can't be represented in a register
// are replaced with this character
const unrepresentable = '?'

// CPU implements the processor of the synacor machine. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC        registers.ProgramCounter
	Registers registers.File
	Stack     stack.Stack

	// the CPU will not execute instructions while Halted is true. the CPU is
	// halted on creation and by the Halt instruction or a fault. it is up to
	// the caller of ExecuteInstruction() to honour the flag
	Halted bool

	// last result. the Address field is always valid after the first call to
	// ExecuteInstruction(), even if the instruction failed
	LastResult execution.Result

	mem          cpubus.Memory
	term         terminal.Terminal
	instructions []*instructions.Definition

	// characters of the most recent line read from the terminal that have not
	// yet been consumed by the In instruction. the line terminator is included
	input []rune
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory, term terminal.Terminal) *CPU {
	mc := &CPU{
		mem:          mem,
		term:         term,
		PC:           registers.NewProgramCounter(0),
		Registers:    registers.NewFile(),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s stack=%s", mc.PC.Label(), mc.PC, mc.Registers, mc.Stack)
}

// Reset reinitialises all registers, empties the stack and discards any
// buffered input. The CPU is left halted.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.Registers.Reset()
	mc.Stack.Reset()
	mc.LastResult.Reset()
	mc.input = mc.input[:0]
	mc.Halted = true
}

// fault halts the CPU and wraps the error with details of the instruction
// being executed.
func (mc *CPU) fault(err error) error {
	mc.Halted = true
	mc.LastResult.Error = err.Error()
	mc.LastResult.NextPC = mc.PC.Address()
	return curated.Errorf(Fault, mc.LastResult.Address, mc.LastResult.OpCode, mc.LastResult.Mnemonic(), err)
}

// read a single word from memory at the PC and advance the PC.
func (mc *CPU) fetch() (uint16, error) {
	w, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.WordCount++
	return w, nil
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// current program counter. Every operand word of the instruction is fetched
// before the instruction takes effect.
//
// Any error is fatal. The CPU will be halted and the error will be wrapped in
// the Fault pattern.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.fetch()
	if err != nil {
		return mc.fault(err)
	}
	mc.LastResult.OpCode = opcode

	if opcode >= uint16(instructions.NumOperators) {
		return mc.fault(curated.Errorf(InvalidOpcode, opcode))
	}

	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn

	for i := 0; i < defn.Arity(); i++ {
		w, err := mc.fetch()
		if err != nil {
			return mc.fault(err)
		}
		mc.LastResult.Operands[i] = w
	}

	if err := mc.execute(defn); err != nil {
		return mc.fault(err)
	}

	mc.LastResult.NextPC = mc.PC.Address()
	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) execute(defn *instructions.Definition) error {
	ops := mc.LastResult.Operands

	switch defn.Operator {
	case instructions.Halt:
		mc.Halted = true

	case instructions.Set:
		dst, err := mc.resolveDestination(ops[0])
		if err != nil {
			return err
		}
		v, err := mc.resolveValue(ops[1])
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, v)

	case instructions.Push:
		v, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		mc.Stack.Push(v)

	case instructions.Pop:
		dst, err := mc.resolveDestination(ops[0])
		if err != nil {
			return err
		}
		v, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, v)

	case instructions.Eq:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, boolWord(a == b))

	case instructions.Gt:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, boolWord(a > b))

	case instructions.Jmp:
		target, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		mc.PC.Load(target)

	case instructions.Jt, instructions.Jf:
		cond, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		target, err := mc.resolveValue(ops[1])
		if err != nil {
			return err
		}
		if (cond != 0) == (defn.Operator == instructions.Jt) {
			mc.PC.Load(target)
		}

	case instructions.Add:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, uint16((uint32(a)+uint32(b))%memory.Size))

	case instructions.Mult:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, uint16((uint32(a)*uint32(b))%memory.Size))

	case instructions.Mod:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		if b == 0 {
			return curated.Errorf(DivisionByZero)
		}
		mc.Registers.Load(dst, a%b)

	case instructions.And:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, a&b)

	case instructions.Or:
		dst, a, b, err := mc.resolveArithmetic()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, a|b)

	case instructions.Not:
		dst, err := mc.resolveDestination(ops[0])
		if err != nil {
			return err
		}
		v, err := mc.resolveValue(ops[1])
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, ^v&0x7fff)

	case instructions.Rmem:
		dst, err := mc.resolveDestination(ops[0])
		if err != nil {
			return err
		}
		address, err := mc.resolveValue(ops[1])
		if err != nil {
			return err
		}
		v, err := mc.mem.Read(address)
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, v)

	case instructions.Wmem:
		address, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		v, err := mc.resolveValue(ops[1])
		if err != nil {
			return err
		}
		if err := mc.mem.Write(address, v); err != nil {
			return err
		}

	case instructions.Call:
		target, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		// the PC has already been advanced past the operand
		mc.Stack.Push(mc.PC.Address())
		mc.PC.Load(target)

	case instructions.Ret:
		address, err := mc.Stack.Pop()
		if err != nil {
			return curated.Errorf(NoReturnAddress, err)
		}
		mc.PC.Load(address)

	case instructions.Out:
		v, err := mc.resolveValue(ops[0])
		if err != nil {
			return err
		}
		if err := mc.term.TermWrite(rune(v)); err != nil {
			return curated.Errorf(TerminalError, err)
		}

	case instructions.In:
		dst, err := mc.resolveDestination(ops[0])
		if err != nil {
			return err
		}
		ch, err := mc.readCharacter()
		if err != nil {
			return err
		}
		mc.Registers.Load(dst, ch)

	case instructions.Noop:

	default:
		return curated.Errorf(InvalidOpcode, mc.LastResult.OpCode)
	}

	return nil
}

// readCharacter returns the next character of input. a new line is requested
// from the terminal only when the previous line has been completely consumed,
// including the line terminator.
func (mc *CPU) readCharacter() (uint16, error) {
	if len(mc.input) == 0 {
		s, err := mc.term.TermReadLine()
		if err != nil {
			if err == io.EOF {
				return 0, curated.Errorf(InputExhausted)
			}
			return 0, curated.Errorf(TerminalError, err)
		}
		mc.input = append(mc.input[:0], []rune(s)...)
		mc.input = append(mc.input, '\n')
	}

	ch := mc.input[0]
	mc.input = mc.input[1:]

	if ch < 0 || ch >= memory.Size {
		ch = unrepresentable
	}

	return uint16(ch), nil
}

// PendingInput returns the number of buffered input characters that have not
// yet been consumed.
func (mc *CPU) PendingInput() int {
	return len(mc.input)
}

func boolWord(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
