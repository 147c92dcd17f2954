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

package programloader_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gosynacor/gosynacor/curated"
	"github.com/gosynacor/gosynacor/programloader"
	"github.com/gosynacor/gosynacor/test"
)

func writeProgram(t *testing.T, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o600))
	return filename
}

func TestWords(t *testing.T) {
	filename := writeProgram(t, []byte{0x13, 0x00, 0x41, 0x00, 0x00, 0x80, 0xff, 0x7f})

	pl := programloader.NewLoader(filename)
	test.ExpectFailure(t, pl.HasLoaded())

	words, err := pl.Words()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, pl.HasLoaded())
	test.DemandEquality(t, len(words), 4)
	test.ExpectEquality(t, words[0], 19)
	test.ExpectEquality(t, words[1], 65)
	test.ExpectEquality(t, words[2], 32768)
	test.ExpectEquality(t, words[3], 32767)

	test.ExpectEquality(t, pl.ShortName(), "program")
	test.ExpectEquality(t, len(pl.Hash), 40)
}

func TestEmpty(t *testing.T) {
	pl := programloader.NewLoader(writeProgram(t, []byte{}))
	words, err := pl.Words()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(words), 0)
}

func TestOddLength(t *testing.T) {
	pl := programloader.NewLoader(writeProgram(t, []byte{0x13, 0x00, 0x41}))
	_, err := pl.Words()
	test.ExpectSuccess(t, curated.Is(err, programloader.LoadError))
	test.ExpectSuccess(t, curated.Has(err, programloader.OddLength))
	test.ExpectFailure(t, pl.HasLoaded())
}

func TestTooLarge(t *testing.T) {
	// exactly fills memory
	pl := programloader.NewLoader(writeProgram(t, make([]byte, 32768*2)))
	words, err := pl.Words()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(words), 32768)

	pl = programloader.NewLoader(writeProgram(t, make([]byte, 32769*2)))
	_, err = pl.Words()
	test.ExpectSuccess(t, curated.Has(err, programloader.TooLarge))
}

func TestMissingFile(t *testing.T) {
	pl := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	err := pl.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.LoadError))
}

func TestHash(t *testing.T) {
	filename := writeProgram(t, []byte{0x00, 0x00})

	pl := programloader.NewLoader(filename)
	test.DemandSuccess(t, pl.Load())
	hash := pl.Hash

	// matching hash
	pl = programloader.NewLoader(filename)
	pl.Hash = hash
	test.ExpectSuccess(t, pl.Load())

	// mismatched hash
	pl = programloader.NewLoader(filename)
	pl.Hash = "0000000000000000000000000000000000000000"
	err := pl.Load()
	test.ExpectSuccess(t, curated.Has(err, programloader.UnexpectedHash))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/challenge.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x15, 0x00, 0x00, 0x00})
	}))
	defer srv.Close()

	pl := programloader.NewLoader(fmt.Sprintf("%s/challenge.bin", srv.URL))
	words, err := pl.Words()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(words), 2)
	test.ExpectEquality(t, words[0], 21)

	pl = programloader.NewLoader(fmt.Sprintf("%s/missing.bin", srv.URL))
	err = pl.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.LoadError))
}

func TestUnknownScheme(t *testing.T) {
	pl := programloader.NewLoader("ftp://example.com/challenge.bin")
	err := pl.Load()
	test.ExpectSuccess(t, curated.Has(err, programloader.UnknownScheme))
}
