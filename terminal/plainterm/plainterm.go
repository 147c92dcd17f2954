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

// Package plainterm implements the Terminal interface using the standard
// input and output of the process. It's as simple as simple can be and offers
// no special features.
package plainterm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/logger"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. When the input
// is a real terminal it is put into canonical mode for the duration of the
// program, meaning that the terminal takes care of line editing and echo.
type PlainTerminal struct {
	input  *bufio.Reader
	output *bufio.Writer

	inputFile *os.File

	// whether input is a real terminal
	realInput bool

	// terminal attributes to restore on CleanUp()
	restore *ttyState
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. The input and output files will usually be os.Stdin and
// os.Stdout.
func NewPlainTerminal(input *os.File, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:     bufio.NewReader(input),
		output:    bufio.NewWriter(output),
		inputFile: input,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	pt.realInput = term.IsTerminal(int(pt.inputFile.Fd()))
	if !pt.realInput {
		return nil
	}

	st, err := canonicalMode(pt.inputFile.Fd())
	if err != nil {
		return curated.Errorf("plainterm: %v", err)
	}
	pt.restore = st

	logger.Log(logger.Allow, "plainterm", "input is a terminal: canonical mode")

	return nil
}

// CleanUp implements the terminal.Terminal interface. It is safe to call more
// than once; terminal attributes are only restored on the first call.
func (pt *PlainTerminal) CleanUp() {
	_ = pt.output.Flush()
	if pt.restore != nil {
		restoreMode(pt.inputFile.Fd(), pt.restore)
		pt.restore = nil
	}
}

// IsRealTerminal returns true if input is a real terminal.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput
}

// TermWrite implements the terminal.Output interface.
func (pt *PlainTerminal) TermWrite(ch rune) error {
	if _, err := pt.output.WriteRune(ch); err != nil {
		return err
	}
	if ch == '\n' {
		return pt.output.Flush()
	}
	return nil
}

// TermReadLine implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadLine() (string, error) {
	// anything written so far (a prompt for example) should be visible before
	// we block on input
	if err := pt.output.Flush(); err != nil {
		return "", err
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err != io.EOF || s == "" {
			return "", err
		}
	}

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")

	return s, nil
}
