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
	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a definition")
	}

	// every operand word must have been fetched before execution
	if r.WordCount != r.Defn.Words() {
		return curated.Errorf("cpu: unexpected number of words read during decode (%d instead of %d)", r.WordCount, r.Defn.Words())
	}

	// instructions that don't transfer control must leave the PC pointing at
	// the word after the last operand
	switch r.Defn.Effect {
	case instructions.Flow, instructions.Subroutine:
	default:
		expected := r.Address + uint16(r.WordCount)
		if r.NextPC != expected {
			return curated.Errorf("cpu: program counter not advanced correctly for %s (%#04x instead of %#04x)", r.Defn.Mnemonic, r.NextPC, expected)
		}
	}

	return nil
}
