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

// Package terminal defines the interface between the machine and the outside
// world. The machine writes characters one at a time with TermWrite() and
// reads input a line at a time with TermReadLine().
//
// The line is handed to the CPU which then serves the characters of the line,
// followed by a single newline character, to successive In instructions. Only
// when the line is exhausted will TermReadLine() be called again. This means
// that the CPU only ever blocks at the start of a line.
//
// Implementations are found in the sub-packages. The plainterm package uses
// the process's stdin and stdout; the scriptterm package takes its input from
// a list of strings and captures output, which is useful for testing.
package terminal
