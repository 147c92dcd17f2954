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

package registers_test

import (
	"testing"

	"github.com/gosynacor/gosynacor/hardware/cpu/registers"
	"github.com/gosynacor/gosynacor/test"
)

func TestFile(t *testing.T) {
	f := registers.NewFile()
	for i := 0; i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, f.Value(i), 0)
	}

	f.Load(0, 10)
	f.Load(7, 32767)
	test.ExpectEquality(t, f.Value(0), 10)
	test.ExpectEquality(t, f.Value(7), 32767)
	test.ExpectEquality(t, f.Register(7).Label(), "R7")
	test.ExpectEquality(t, f.Register(0).String(), "R0=0x000a")

	f.Reset()
	test.ExpectEquality(t, f.Value(0), 0)
	test.ExpectEquality(t, f.Value(7), 0)
}

func TestIsRegister(t *testing.T) {
	test.ExpectFailure(t, registers.IsRegister(5))
	test.ExpectFailure(t, registers.IsRegister(32767))
	test.ExpectSuccess(t, registers.IsRegister(32768))
	test.ExpectSuccess(t, registers.IsRegister(32775))
	test.ExpectFailure(t, registers.IsRegister(32776))
	test.ExpectFailure(t, registers.IsRegister(65535))
}
