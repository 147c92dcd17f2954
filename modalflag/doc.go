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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a way of handling program modes, with different flags
// for each mode.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and Parse() is
// called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//	p, err := md.Parse()
//
// A mode is a special command line argument which selects a different mode of
// operation. The first sub-mode given to AddSubModes() is the default and is
// selected if the first non-flag argument is not the name of a mode. Mode
// comparisons are case insensitive; Mode() returns the name in upper case.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stderr")
//		p, err := md.Parse()
//		...
//	case "VERSION":
//		...
//	}
//
// After the call to NewMode(), flags are added for the selected mode and a
// second call to Parse() processes them. Modes can be nested as deeply as
// required. The Path() function returns all modes selected so far.
package modalflag
