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

// Package scriptterm implements the Terminal interface with input taken from a
// prepared list of lines. Output is captured and can be retrieved with the
// Output() function. Useful for testing and for feeding a recorded session into
// a program.
package scriptterm

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// ScriptTerminal serves lines from a script. Once the script has been
// exhausted TermReadLine() returns io.EOF.
type ScriptTerminal struct {
	crit sync.Mutex

	lines  []string
	output strings.Builder

	// echo output to this writer as well as capturing it. can be nil
	echo io.Writer
}

// NewScriptTerminal is the preferred method of initialisation for the
// ScriptTerminal type.
func NewScriptTerminal(lines ...string) *ScriptTerminal {
	return &ScriptTerminal{
		lines: lines,
	}
}

// NewScriptTerminalFromReader creates a ScriptTerminal with the lines read
// from the io.Reader.
func NewScriptTerminalFromReader(r io.Reader) (*ScriptTerminal, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewScriptTerminal(lines...), nil
}

// SetEcho writes output to io.Writer as well as capturing it.
func (st *ScriptTerminal) SetEcho(echo io.Writer) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.echo = echo
}

// Initialise implements the terminal.Terminal interface.
func (st *ScriptTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (st *ScriptTerminal) CleanUp() {
}

// TermWrite implements the terminal.Output interface.
func (st *ScriptTerminal) TermWrite(ch rune) error {
	st.crit.Lock()
	defer st.crit.Unlock()

	st.output.WriteRune(ch)
	if st.echo != nil {
		if _, err := io.WriteString(st.echo, string(ch)); err != nil {
			return err
		}
	}
	return nil
}

// TermReadLine implements the terminal.Input interface.
func (st *ScriptTerminal) TermReadLine() (string, error) {
	st.crit.Lock()
	defer st.crit.Unlock()

	if len(st.lines) == 0 {
		return "", io.EOF
	}

	s := st.lines[0]
	st.lines = st.lines[1:]
	return s, nil
}

// Remaining returns the number of script lines not yet read.
func (st *ScriptTerminal) Remaining() int {
	st.crit.Lock()
	defer st.crit.Unlock()
	return len(st.lines)
}

// Output returns everything written to the terminal so far.
func (st *ScriptTerminal) Output() string {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.output.String()
}
