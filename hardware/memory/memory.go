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

package memory

import (
	"fmt"
	"strings"

	"github.com/gosynacor/gosynacor/curated"
)

// Size of the address space in words.
const Size = 32768

// Sentinal error patterns.
const (
	InvalidAddress = "memory: invalid address (%d)"
	ImageTooLarge  = "memory: image too large (%d words)"
)

// Memory is the word addressed program and data memory of the machine.
// Implements the cpubus.Memory interface.
type Memory struct {
	data [Size]uint16
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// memory is zero-filled.
func NewMemory() *Memory {
	return &Memory{}
}

// Label returns the name of the memory area.
func (mem *Memory) Label() string {
	return "RAM"
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%d words]", mem.Label(), Size))
	return s.String()
}

// Reset zero-fills the memory.
func (mem *Memory) Reset() {
	mem.data = [Size]uint16{}
}

// Load copies the program image into memory starting at address zero. The
// remainder of memory is left untouched.
func (mem *Memory) Load(image []uint16) error {
	if len(image) > Size {
		return curated.Errorf(ImageTooLarge, len(image))
	}
	copy(mem.data[:], image)
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint16, error) {
	if address >= Size {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint16) error {
	if address >= Size {
		return curated.Errorf(InvalidAddress, address)
	}
	mem.data[address] = data
	return nil
}
