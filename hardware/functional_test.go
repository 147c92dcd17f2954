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

package hardware_test

import (
	"context"
	"testing"

	"github.com/gosynacor/gosynacor/hardware"
	"github.com/gosynacor/gosynacor/hardware/cpu/instructions"
	"github.com/gosynacor/gosynacor/terminal/scriptterm"
	"github.com/gosynacor/gosynacor/test"
)

// assembler is a minimal assembler for building test programs with forward
// references to labels.
type assembler struct {
	words  []uint16
	labels map[string]uint16
	fixups map[int]string
}

func newAssembler() *assembler {
	return &assembler{
		labels: make(map[string]uint16),
		fixups: make(map[int]string),
	}
}

// operands are either integers, characters or strings naming a label
func (a *assembler) op(opr instructions.Operator, operands ...any) {
	a.words = append(a.words, uint16(opr))
	for _, o := range operands {
		switch o := o.(type) {
		case int:
			a.words = append(a.words, uint16(o))
		case rune:
			a.words = append(a.words, uint16(o))
		case string:
			a.fixups[len(a.words)] = o
			a.words = append(a.words, 0)
		}
	}
}

func (a *assembler) label(name string) {
	a.labels[name] = uint16(len(a.words))
}

func (a *assembler) data(w uint16) {
	a.words = append(a.words, w)
}

func (a *assembler) assemble(t *testing.T) []uint16 {
	t.Helper()
	for i, l := range a.fixups {
		v, ok := a.labels[l]
		if !ok {
			t.Fatalf("undefined label: %s", l)
		}
		a.words[i] = v
	}
	return a.words
}

const (
	reg0 = 32768 + iota
	reg1
	reg2
	_
	_
	_
	_
	reg7
)

// a self checking program that exercises every instruction. the program
// prints "ok" if every check passes
func selfCheck(t *testing.T) []uint16 {
	a := newAssembler()

	a.op(instructions.Set, reg0, 32767)
	a.op(instructions.Add, reg0, reg0, 5)
	a.op(instructions.Eq, reg1, reg0, 4)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Mult, reg0, 20000, 20000)
	a.op(instructions.Eq, reg1, reg0, 1024)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Mod, reg0, 17, 5)
	a.op(instructions.Eq, reg1, reg0, 2)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.And, reg0, 0x7f0f, 0x00ff)
	a.op(instructions.Eq, reg1, reg0, 0x000f)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Or, reg0, 0x7f00, 0x000f)
	a.op(instructions.Eq, reg1, reg0, 0x7f0f)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Not, reg0, 0)
	a.op(instructions.Eq, reg1, reg0, 32767)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Gt, reg1, 5, 4)
	a.op(instructions.Jf, reg1, "fail")
	a.op(instructions.Gt, reg1, 4, 5)
	a.op(instructions.Jt, reg1, "fail")

	a.op(instructions.Push, 1234)
	a.op(instructions.Pop, reg2)
	a.op(instructions.Eq, reg1, reg2, 1234)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Wmem, "data", 77)
	a.op(instructions.Rmem, reg0, "data")
	a.op(instructions.Eq, reg1, reg0, 77)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Call, "sub")
	a.op(instructions.Eq, reg1, reg7, 99)
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Jmp, "skip")
	a.op(instructions.Jmp, "fail")
	a.label("skip")

	a.op(instructions.In, reg0)
	a.op(instructions.Eq, reg1, reg0, 'y')
	a.op(instructions.Jf, reg1, "fail")
	a.op(instructions.In, reg0)
	a.op(instructions.Eq, reg1, reg0, '\n')
	a.op(instructions.Jf, reg1, "fail")

	a.op(instructions.Noop)
	a.op(instructions.Out, 'o')
	a.op(instructions.Out, 'k')
	a.op(instructions.Out, '\n')
	a.op(instructions.Halt)

	a.label("fail")
	a.op(instructions.Out, 'F')
	a.op(instructions.Halt)

	a.label("sub")
	a.op(instructions.Set, reg7, 99)
	a.op(instructions.Ret)

	a.label("data")
	a.data(0)

	return a.assemble(t)
}

func TestSelfCheck(t *testing.T) {
	term := scriptterm.NewScriptTerminal("y")
	m := hardware.NewMachine(term)
	test.DemandSuccess(t, m.AttachProgram(writeProgram(t, selfCheck(t)...)))
	test.ExpectSuccess(t, m.Run(context.Background()))
	test.ExpectEquality(t, term.Output(), "ok\n")
	test.ExpectEquality(t, m.CPU.Stack.Depth(), 0)
}

// the same program given the wrong input takes the failure path
func TestSelfCheckFailure(t *testing.T) {
	term := scriptterm.NewScriptTerminal("n")
	m := hardware.NewMachine(term)
	test.DemandSuccess(t, m.AttachProgram(writeProgram(t, selfCheck(t)...)))
	test.ExpectSuccess(t, m.Run(context.Background()))
	test.ExpectEquality(t, term.Output(), "F")
}
