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

package programloader

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/hardware/memory"
)

// Sentinal error patterns. All errors returned by the Loader are wrapped in the
// LoadError pattern.
const (
	LoadError      = "programloader: %v"
	OddLength      = "odd number of bytes (%d)"
	TooLarge       = "program too large (%d words)"
	UnexpectedHash = "unexpected hash value (%s)"
	UnknownScheme  = "unsupported URL scheme (%s)"
)

// Loader is used to specify the program binary to attach to the machine.
type Loader struct {
	// filename of program to load.
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	loaded bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	shortName := path.Base(pl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(pl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return pl.loaded
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if pl.loaded {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	// a single letter scheme is a windows drive letter
	if len(scheme) == 1 {
		scheme = "file"
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, curated.Errorf(UnknownScheme, scheme))
	}

	if len(data)%2 != 0 {
		return curated.Errorf(LoadError, curated.Errorf(OddLength, len(data)))
	}

	if len(data)/2 > memory.Size {
		return curated.Errorf(LoadError, curated.Errorf(TooLarge, len(data)/2))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf(LoadError, curated.Errorf(UnexpectedHash, hash))
	}

	pl.Hash = hash
	pl.Data = data
	pl.loaded = true

	return nil
}

// Words decodes the loaded data as a sequence of little-endian 16 bit words.
// Load() will be called if necessary.
func (pl *Loader) Words() ([]uint16, error) {
	if err := pl.Load(); err != nil {
		return nil, err
	}

	words := make([]uint16, len(pl.Data)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(pl.Data[i*2:])
	}

	return words, nil
}
