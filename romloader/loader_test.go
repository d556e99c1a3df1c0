// This file is part of splitrom.
//
// splitrom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// splitrom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with splitrom.  If not, see <https://www.gnu.org/licenses/>.

package romloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/splitrom/archivefs"
	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/romloader"
	"github.com/jetsetilly/splitrom/test"
)

func createZip(t *testing.T, filename string, names ...string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range names {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)

		// directories have no content. the content of a file is its name
		if !strings.HasSuffix(n, "/") {
			_, err = w.Write([]byte(n))
			test.DemandSuccess(t, err)
		}
	}
	test.DemandSuccess(t, zw.Close())
}

func TestPlainFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "game.bin")
	data := []byte{0x12, 0x34, 0x56, 0x78}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.IsArchive)

	err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, ld.Data, data)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, ld.ShortName(), "game")
	test.ExpectEquality(t, ld.BaseDir(), dir)
	test.ExpectEquality(t, ld.EntryName, "")

	// a second load does nothing
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xff}, 0o644))
	test.ExpectSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, data)
}

func TestNotFound(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.NotFound))
	test.ExpectEquality(t, ld.Hash, "")

	// missing archives are also not found
	ld = romloader.NewLoader(filepath.Join(t.TempDir(), "missing.zip"))
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.NotFound))
}

func TestNotRegular(t *testing.T) {
	ld := romloader.NewLoader(t.TempDir())
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.NotRegular))
}

func TestEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0o644))

	ld := romloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 0)
	test.ExpectEquality(t, ld.ShortName(), "empty")
}

func TestHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.bin")
	data := []byte("hash me")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	ld := romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectEquality(t, len(ld.Data), 0)

	// a failed load can be tried again
	ld.Hash = hash
	test.ExpectSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, data)

	// hash comparison is case insensitive
	ld = romloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%X", sha1.Sum(data))
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Hash, hash)
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "collection.zip")
	createZip(t, fn, "roms/", "roms/first.rom", "second.bin")

	ld := romloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.IsArchive)

	err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(ld.Data), "roms/first.rom")
	test.ExpectEquality(t, ld.EntryName, "roms/first.rom")
	test.ExpectEquality(t, ld.ShortName(), "first")
	test.ExpectEquality(t, ld.BaseDir(), dir)
	test.ExpectEquality(t, ld.String(), fmt.Sprintf("roms/first.rom (%s)", fn))

	// archives made by other tools. see the archivefs testdata for how the
	// files are laid out
	for _, fn := range []string{"test.7z", "test.rar"} {
		ld := romloader.NewLoader(filepath.Join("testdata", fn))
		test.ExpectSuccess(t, ld.IsArchive, fn)

		err := ld.Load()
		test.DemandSuccess(t, err, fn)
		test.ExpectBytes(t, ld.Data, []byte{0x12, 0x34, 0x56, 0x78}, fn)
		test.ExpectEquality(t, ld.EntryName, "roms/game.bin", fn)
		test.ExpectEquality(t, ld.ShortName(), "game", fn)
		test.ExpectEquality(t, ld.BaseDir(), "testdata", fn)
	}
}

func TestArchiveEntry(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "collection.zip")
	createZip(t, fn, "roms/", "roms/first.rom", "second.bin")

	ld := romloader.NewLoader(fn)
	ld.EntryName = "second.bin"
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), "second.bin")
	test.ExpectEquality(t, ld.ShortName(), "second")

	// the entry must name a file
	for _, name := range []string{"missing.bin", "roms/"} {
		ld = romloader.NewLoader(fn)
		ld.EntryName = name
		test.ExpectFailure(t, ld.Load(), name)
		test.ExpectEquality(t, len(ld.Data), 0, name)
	}

	// the entry is ignored for files that are not archives
	plain := filepath.Join(dir, "game.bin")
	test.DemandSuccess(t, os.WriteFile(plain, []byte{0x01, 0x02}, 0o644))
	ld = romloader.NewLoader(plain)
	ld.EntryName = "second.bin"
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, []byte{0x01, 0x02})
	test.ExpectEquality(t, ld.ShortName(), "game")
}

func TestUnsupportedArchive(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "game.zip")
	createZip(t, fn, "game.bin")

	ld := romloader.NewLoader(fn)
	ld.Registry = archivefs.NewRegistry()
	err := ld.Load()
	test.ExpectSuccess(t, curated.Has(err, archivefs.UnsupportedFormat))
	test.ExpectEquality(t, err.Error(), "romloader: archivefs: unsupported archive format: .zip")

	// file is not really an archive
	fn = filepath.Join(dir, "fake.7z")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a 7z file"), 0o644))
	ld = romloader.NewLoader(fn)
	err = ld.Load()
	test.ExpectSuccess(t, curated.Has(err, archivefs.UnsupportedFormat))
}

func TestEmptyArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.zip")
	createZip(t, fn, "dir/")

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Has(err, archivefs.EmptyArchive))
}
