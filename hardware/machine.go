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

package hardware

import (
	"context"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/hardware/cpu"
	"github.com/gosynacor/gosynacor/hardware/memory"
	"github.com/gosynacor/gosynacor/logger"
	"github.com/gosynacor/gosynacor/programloader"
	"github.com/gosynacor/gosynacor/terminal"
)

// Interrupted is returned by Run() when the context has been cancelled.
const Interrupted = "machine: interrupted: %v"

// Machine is the synacor virtual machine. The CPU and memory are owned by the
// Machine; the terminal is attached to it.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// term is not part of the machine but is attached to it
	Term terminal.Terminal

	// name of the attached program. empty if no program has been attached
	Program string

	// number of instructions executed since the program was attached
	Instructions int
}

// NewMachine creates a new Machine and everything associated with the
// hardware.
func NewMachine(term terminal.Terminal) *Machine {
	m := &Machine{
		Term: term,
		Mem:  memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem, m.Term)
	return m
}

// AttachProgram loads a program into memory. The machine is reset, with memory
// beyond the end of the program left zeroed.
func (m *Machine) AttachProgram(pl programloader.Loader) error {
	words, err := pl.Words()
	if err != nil {
		return err
	}

	m.Reset()

	if err := m.Mem.Load(words); err != nil {
		return curated.Errorf(programloader.LoadError, err)
	}

	m.Program = pl.ShortName()
	logger.Logf(logger.Allow, "machine", "loaded %s (%d words) [%s]", m.Program, len(words), pl.Hash)

	return nil
}

// Reset zeroes memory and resets the CPU.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.CPU.Reset()
	m.Instructions = 0
}

// Step executes a single CPU instruction.
func (m *Machine) Step() error {
	err := m.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}
	m.Instructions++
	return nil
}

// Run the machine until it halts, a fault occurs, or the context is cancelled.
// The context is checked once per instruction, before the opcode is fetched.
// The In instruction may block while waiting for the terminal, in which case
// the cancellation will not be noticed until the instruction completes.
func (m *Machine) Run(ctx context.Context) error {
	m.CPU.Halted = false
	logger.Logf(logger.Allow, "machine", "started %s at %s", m.Program, m.CPU.PC)

	for !m.CPU.Halted {
		if err := ctx.Err(); err != nil {
			m.CPU.Halted = true
			logger.Logf(logger.Allow, "machine", "stop requested at %s", m.CPU.PC)
			return curated.Errorf(Interrupted, err)
		}

		if err := m.Step(); err != nil {
			logger.Log(logger.Allow, "machine", err)
			return err
		}
	}

	logger.Logf(logger.Allow, "machine", "halted after %d instructions", m.Instructions)

	return nil
}

// Peek returns the word at the memory address.
func (m *Machine) Peek(address uint16) (uint16, error) {
	return m.Mem.Read(address)
}

// Poke writes a word to the memory address.
func (m *Machine) Poke(address uint16, data uint16) error {
	return m.Mem.Write(address, data)
}

// Visualise writes a graphviz representation of the CPU state to the
// io.Writer. Memory is not included.
func (m *Machine) Visualise(w io.Writer) {
	st := m.CPU.State()
	memviz.Map(w, &st)
}
