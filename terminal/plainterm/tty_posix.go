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

//go:build !windows

package plainterm

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type ttyState struct {
	attr unix.Termios
}

// canonicalMode puts the terminal into canonical mode with echo. the state of
// the terminal before the change is returned.
func canonicalMode(fd uintptr) (*ttyState, error) {
	var st ttyState
	if err := termios.Tcgetattr(fd, &st.attr); err != nil {
		return nil, err
	}

	attr := st.attr
	attr.Lflag |= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &attr); err != nil {
		return nil, err
	}

	return &st, nil
}

func restoreMode(fd uintptr, st *ttyState) {
	_ = termios.Tcsetattr(fd, termios.TCSANOW, &st.attr)
}
