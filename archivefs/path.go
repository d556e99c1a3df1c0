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

package archivefs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/logger"
)

// Path represents a single file in the file system. If the file is a
// recognised archive then the Path also refers to one of the files inside the
// archive.
type Path struct {
	// the registry used to find decoders for archive files. if nil then the
	// Default registry is used
	Registry *Registry

	current string
	isDir   bool

	dec     Decoder
	entries []Entry

	// the name of the selected file inside the archive
	inArchiveFile string
}

// Selected returns the name of the file inside the archive that will be read
// by Open(). Empty if the path is not an archive or if no file has been
// selected.
func (afs Path) Selected() string {
	return afs.inArchiveFile
}

// Close resets the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.dec = nil
	afs.entries = nil
	afs.inArchiveFile = ""
}

// Set the path to the filename. If the filename has the extension of a
// recognised archive type then a decoder for that type must be present in the
// registry, otherwise the UnsupportedFormat error is returned.
func (afs *Path) Set(filename string) error {
	afs.Close()

	filename = filepath.Clean(filename)

	fi, err := os.Stat(filename)
	if err != nil {
		return curated.Errorf("archivefs: set: %v", err)
	}

	afs.current = filename
	afs.isDir = fi.IsDir()

	if afs.isDir || !IsArchive(filename) {
		return nil
	}

	reg := afs.Registry
	if reg == nil {
		reg = Default
	}

	dec, err := reg.Decoder(filename)
	if err != nil {
		afs.current = ""
		return err
	}

	ent, err := dec.Entries(filename)
	if err != nil {
		afs.current = ""
		return err
	}

	afs.dec = dec
	afs.entries = ent

	return nil
}

// List returns the file entries in the archive, in the order given by the
// decoder. Directory entries are not included. The order is the archive
// format's storage order, which is decided by the tool that created the
// archive.
func (afs Path) List() ([]Entry, error) {
	if afs.dec == nil {
		return nil, curated.Errorf("archivefs: list: %s is not an archive", afs.current)
	}

	var ent []Entry
	for _, e := range afs.entries {
		if !e.IsDir {
			ent = append(ent, e)
		}
	}

	return ent, nil
}

// First selects the first file in the archive. If there is more than one file
// in the archive then a warning is logged naming all of them.
func (afs *Path) First() (Entry, error) {
	ent, err := afs.List()
	if err != nil {
		return Entry{}, err
	}

	if len(ent) == 0 {
		return Entry{}, curated.Errorf(EmptyArchive, afs.current)
	}

	if len(ent) > 1 {
		names := make([]string, len(ent))
		for i := range ent {
			names[i] = ent[i].Name
		}
		logger.Logf(logger.Allow, "archivefs", "found %d files in archive: %s", len(ent), strings.Join(names, ", "))
		logger.Logf(logger.Allow, "archivefs", "processing only the first file: %s", ent[0].Name)
	}

	afs.inArchiveFile = ent[0].Name

	return ent[0], nil
}

// Select a file in the archive by name.
func (afs *Path) Select(name string) error {
	ent, err := afs.List()
	if err != nil {
		return err
	}

	for _, e := range ent {
		if e.Name == name {
			afs.inArchiveFile = name
			return nil
		}
	}

	return curated.Errorf("archivefs: select: no file named %s in %s", name, afs.current)
}

// Open and return an io.ReadSeeker for the current path. If the path is an
// archive then the selected file is read. If no file has been selected then
// the first file is selected.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs *Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.dec != nil {
		if afs.inArchiveFile == "" {
			if _, err := afs.First(); err != nil {
				return nil, 0, err
			}
		}

		b, err := afs.dec.ReadEntry(afs.current, afs.inArchiveFile)
		if err != nil {
			return nil, 0, err
		}

		return bytes.NewReader(b), len(b), nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return bytes.NewReader(b), len(b), nil
}
