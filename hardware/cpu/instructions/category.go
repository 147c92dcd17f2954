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

// Category of an instruction describes its effect
type Category int

const (
	// the instruction alters registers, memory or the stack only
	Data Category = iota

	// the instruction may load the program counter
	Flow

	// the instruction loads the program counter and uses the stack for the
	// return address
	Subroutine

	// the instruction communicates with the terminal
	IO

	// the instruction affects the running state of the machine
	Control
)

func (e Category) String() string {
	switch e {
	case Data:
		return "Data"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case IO:
		return "IO"
	case Control:
		return "Control"
	}
	return "unknown effect"
}
