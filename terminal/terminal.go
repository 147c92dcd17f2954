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

package terminal

// Output defines the operations required by an interface that allows output.
type Output interface {
	// TermWrite emits a single character. Characters must appear in the
	// order they are written by the time CleanUp() returns. Implementations
	// are free to buffer but should flush on newline.
	TermWrite(ch rune) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermReadLine blocks until a complete line of input is available and
	// returns it without the line terminator.
	//
	// If the input ends part way through a line then the partial line is
	// returned without error. io.EOF is returned only when there is no input
	// at all.
	TermReadLine() (string, error)
}

// Terminal defines the operations required by the machine for character
// input and output.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible, and make
	// sure all output has been written. not all terminal implementations will
	// need to do anything.
	CleanUp()
}
