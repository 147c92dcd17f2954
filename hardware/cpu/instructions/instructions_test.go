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

package instructions_test

import (
	"testing"

	"github.com/gosynacor/gosynacor/hardware/cpu/instructions"
	"github.com/gosynacor/gosynacor/test"
)

func TestDefinitionTable(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.DemandEquality(t, len(defns), 22)

	// every definition is stored at the index of its opcode
	for i, defn := range defns {
		test.ExpectEquality(t, int(defn.Operator), i, defn.Mnemonic)
		test.ExpectInequality(t, defn.Mnemonic, "")
		test.ExpectSuccess(t, defn.Arity() <= instructions.MaxOperands, defn.Mnemonic)
		test.ExpectEquality(t, defn.Words(), defn.Arity()+1, defn.Mnemonic)
	}
}

func TestArity(t *testing.T) {
	defns := instructions.GetDefinitions()

	arity := map[instructions.Operator]int{
		instructions.Halt: 0, instructions.Set: 2, instructions.Push: 1,
		instructions.Pop: 1, instructions.Eq: 3, instructions.Gt: 3,
		instructions.Jmp: 1, instructions.Jt: 2, instructions.Jf: 2,
		instructions.Add: 3, instructions.Mult: 3, instructions.Mod: 3,
		instructions.And: 3, instructions.Or: 3, instructions.Not: 2,
		instructions.Rmem: 2, instructions.Wmem: 2, instructions.Call: 1,
		instructions.Ret: 0, instructions.Out: 1, instructions.In: 1,
		instructions.Noop: 0,
	}
	for op, n := range arity {
		test.ExpectEquality(t, defns[op].Arity(), n, defns[op].Mnemonic)
	}
}

func TestDestinationRoles(t *testing.T) {
	// a destination is only ever the first operand and wmem has none
	for _, defn := range instructions.GetDefinitions() {
		for i, r := range defn.Operands {
			if i > 0 {
				test.ExpectEquality(t, r, instructions.Value, defn.Mnemonic)
			}
		}
	}
	defns := instructions.GetDefinitions()
	test.ExpectEquality(t, defns[instructions.Wmem].Operands[0], instructions.Value)
	test.ExpectEquality(t, defns[instructions.In].Operands[0], instructions.Destination)
	test.ExpectEquality(t, defns[instructions.Add].String(), "09 add(dst,val,val) [effect=Data]")
}
