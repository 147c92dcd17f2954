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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/gosynacor/gosynacor/curated"
)

// Unavailable is returned by Launch() when the program has been built without
// the statsview build tag.
const Unavailable = "statsview: not available in this build"

// Launch returns the Unavailable error.
func Launch(output io.Writer) error {
	return curated.Errorf(Unavailable)
}

// Available returns false when the statsview build tag is not present.
func Available() bool {
	return false
}
