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

// Package programloader is used to specify the program binary that is to be
// attached to the machine.
//
// A program binary is a flat stream of little-endian 16 bit words. There is no
// header. The first word is loaded into address zero, the second into address
// one and so on. Binaries with an odd number of bytes, or with more words than
// there are memory addresses, are rejected.
//
// Filenames can be local files or HTTP URLs.
//
//	pl := programloader.NewLoader("challenge.bin")
//	words, err := pl.Words()
//
// Once loaded, the Hash field contains the SHA1 hash of the binary. Setting
// the Hash field before loading will cause Load() to fail if the data does not
// match.
package programloader
