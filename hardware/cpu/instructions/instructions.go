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

package instructions

import (
	"fmt"
	"strings"
)

// Operator identifies an instruction. The numeric value of an Operator is the
// opcode word that selects the instruction.
type Operator uint16

// List of valid operators. The list is closed; any other opcode word is invalid.
const (
	Halt Operator = iota
	Set
	Push
	Pop
	Eq
	Gt
	Jmp
	Jt
	Jf
	Add
	Mult
	Mod
	And
	Or
	Not
	Rmem
	Wmem
	Call
	Ret
	Out
	In
	Noop

	// the number of operators. not a valid operator
	NumOperators
)

// Role describes how an operand word is to be interpreted.
type Role int

const (
	// the operand is a literal value or a reference to a register whose
	// content is the value
	Value Role = iota

	// the operand must be a reference to a register, which is written to
	Destination
)

func (r Role) String() string {
	switch r {
	case Value:
		return "val"
	case Destination:
		return "dst"
	}
	return "unknown role"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	Operator Operator
	Mnemonic string
	Operands []Role
	Effect   Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	r := make([]string, len(defn.Operands))
	for i := range defn.Operands {
		r[i] = defn.Operands[i].String()
	}
	return fmt.Sprintf("%02d %s(%s) [effect=%s]", defn.Operator, defn.Mnemonic, strings.Join(r, ","), defn.Effect)
}

// Arity returns the number of operand words that follow the opcode.
func (defn Definition) Arity() int {
	return len(defn.Operands)
}

// Words returns the number of words that make up the instruction, including
// the opcode.
func (defn Definition) Words() int {
	return 1 + len(defn.Operands)
}

// MaxOperands is the largest arity of any instruction.
const MaxOperands = 3

var definitions = [NumOperators]Definition{
	{Operator: Halt, Mnemonic: "halt", Effect: Control},
	{Operator: Set, Mnemonic: "set", Operands: []Role{Destination, Value}, Effect: Data},
	{Operator: Push, Mnemonic: "push", Operands: []Role{Value}, Effect: Data},
	{Operator: Pop, Mnemonic: "pop", Operands: []Role{Destination}, Effect: Data},
	{Operator: Eq, Mnemonic: "eq", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Gt, Mnemonic: "gt", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Jmp, Mnemonic: "jmp", Operands: []Role{Value}, Effect: Flow},
	{Operator: Jt, Mnemonic: "jt", Operands: []Role{Value, Value}, Effect: Flow},
	{Operator: Jf, Mnemonic: "jf", Operands: []Role{Value, Value}, Effect: Flow},
	{Operator: Add, Mnemonic: "add", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Mult, Mnemonic: "mult", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Mod, Mnemonic: "mod", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: And, Mnemonic: "and", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Or, Mnemonic: "or", Operands: []Role{Destination, Value, Value}, Effect: Data},
	{Operator: Not, Mnemonic: "not", Operands: []Role{Destination, Value}, Effect: Data},
	{Operator: Rmem, Mnemonic: "rmem", Operands: []Role{Destination, Value}, Effect: Data},
	{Operator: Wmem, Mnemonic: "wmem", Operands: []Role{Value, Value}, Effect: Data},
	{Operator: Call, Mnemonic: "call", Operands: []Role{Value}, Effect: Subroutine},
	{Operator: Ret, Mnemonic: "ret", Effect: Subroutine},
	{Operator: Out, Mnemonic: "out", Operands: []Role{Value}, Effect: IO},
	{Operator: In, Mnemonic: "in", Operands: []Role{Destination}, Effect: IO},
	{Operator: Noop, Mnemonic: "noop", Effect: Data},
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, NumOperators)
	for i := range definitions {
		defns[i] = &definitions[i]
	}
	return defns
}
