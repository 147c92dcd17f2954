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

// Package cpubus defines how the CPU sees memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Words are 16 bits wide and addresses are word addresses.
//
// Addresses outside of the address space are an error. The program counter
// running off the end of memory, or a register holding a word read from memory
// being used as an address, can both cause such an access.
type Memory interface {
	Read(address uint16) (uint16, error)
	Write(address uint16, data uint16) error
}
