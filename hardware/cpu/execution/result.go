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

package execution

import (
	"fmt"
	"strings"

	"github.com/gosynacor/gosynacor/hardware/cpu/instructions"
	"github.com/gosynacor/gosynacor/hardware/cpu/registers"
)

// Result records the state/result of the most recent instruction.
type Result struct {
	// address of the opcode word
	Address uint16

	// the opcode word as read from memory. may not be a valid operator
	OpCode uint16

	// the decoded definition. nil if the opcode was not valid
	Defn *instructions.Definition

	// raw operand words in the order they were fetched. only the first
	// WordCount-1 entries are meaningful
	Operands [instructions.MaxOperands]uint16

	// the number of words fetched from memory, including the opcode
	WordCount int

	// the value of the program counter after the instruction completed
	NextPC uint16

	// whether this data has been finalised. the instruction may have failed
	// before completion, in which case Final will be false and Error will
	// contain the reason
	Final bool
	Error string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Mnemonic returns the mnemonic of the instruction or a placeholder if the
// opcode was not decoded.
func (r Result) Mnemonic() string {
	if r.Defn == nil {
		return "???"
	}
	return r.Defn.Mnemonic
}

// operand formats a raw operand word. register references are shown by name.
func operand(w uint16) string {
	if w < registers.Base {
		return fmt.Sprintf("%d", w)
	}
	if registers.IsRegister(w) {
		return fmt.Sprintf("R%d", w-registers.Base)
	}
	return fmt.Sprintf("?%d", w)
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Mnemonic()))
	for i := 0; i < r.WordCount-1 && i < len(r.Operands); i++ {
		s.WriteString(" ")
		s.WriteString(operand(r.Operands[i]))
	}
	if r.Error != "" {
		s.WriteString(fmt.Sprintf(" [%s]", r.Error))
	}
	return s.String()
}
