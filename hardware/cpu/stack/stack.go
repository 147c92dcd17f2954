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

// Package stack implements the unbounded last-in-first-out stack of the
// machine. The stack is used for general push/pop and for subroutine return
// addresses.
package stack

import (
	"fmt"
	"strings"

	"github.com/gosynacor/gosynacor/curated"
)

// Underflow is the sentinal pattern returned by Pop() when the stack is empty.
const Underflow = "stack underflow"

// Stack of words. The zero value is an empty stack.
type Stack struct {
	words []uint16
}

func (s Stack) String() string {
	if len(s.words) == 0 {
		return "[]"
	}
	w := make([]string, len(s.words))
	for i, v := range s.words {
		w[i] = fmt.Sprintf("%#04x", v)
	}
	return fmt.Sprintf("[%s]", strings.Join(w, " "))
}

// Depth returns the number of words on the stack.
func (s Stack) Depth() int {
	return len(s.words)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.words = s.words[:0]
}

// Push a word onto the stack.
func (s *Stack) Push(v uint16) {
	s.words = append(s.words, v)
}

// Pop the top word from the stack.
func (s *Stack) Pop() (uint16, error) {
	if len(s.words) == 0 {
		return 0, curated.Errorf(Underflow)
	}
	v := s.words[len(s.words)-1]
	s.words = s.words[:len(s.words)-1]
	return v, nil
}

// Peek returns the top word without removing it.
func (s Stack) Peek() (uint16, error) {
	if len(s.words) == 0 {
		return 0, curated.Errorf(Underflow)
	}
	return s.words[len(s.words)-1], nil
}

// Snapshot returns a copy of the stack contents, bottom first.
func (s Stack) Snapshot() []uint16 {
	c := make([]uint16, len(s.words))
	copy(c, s.words)
	return c
}
