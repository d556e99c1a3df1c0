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

package romloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/splitrom/archivefs"
	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/logger"
	"github.com/jetsetilly/splitrom/paths"
)

// NotFound is returned by Load() when the file does not exist.
const NotFound = "romloader: file not found: %s"

// NotRegular is returned by Load() when the file is a directory or some other
// non-regular file.
const NotRegular = "romloader: not a regular file: %s"

// UnexpectedHash is returned by Load() when the Hash field was set before
// loading and does not match the hash of the loaded data.
const UnexpectedHash = "romloader: unexpected hash value: %s"

// Loader is used to specify the binary image to load.
type Loader struct {
	// filename of the image or of the archive containing the image
	Filename string

	// the filename has the extension of a recognised archive type
	IsArchive bool

	// the registry used to find the decoder for archive files. the default
	// registry is used if nil
	Registry *archivefs.Registry

	// name of the file inside the archive. if empty when Load() is called then
	// the first file in the archive is used. after a load operation the value
	// will be the name of the file that supplied the data. ignored if
	// IsArchive is false
	EntryName string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	loaded bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename:  filename,
		IsArchive: archivefs.IsArchive(filename),
	}
}

// ShortName returns the name of the image without the directory or the
// extension. For an archive, the name is taken from the file inside the
// archive if it is known.
func (ld Loader) ShortName() string {
	if ld.IsArchive && ld.EntryName != "" {
		// names inside archives use forward slashes but some archivers
		// store windows separators
		return paths.Stem(path.Base(strings.ReplaceAll(ld.EntryName, `\`, "/")))
	}
	return paths.Stem(ld.Filename)
}

// BaseDir returns the directory containing the file (or archive).
func (ld Loader) BaseDir() string {
	return filepath.Dir(ld.Filename)
}

// String implements the fmt.Stringer interface.
func (ld Loader) String() string {
	if ld.IsArchive && ld.EntryName != "" {
		return fmt.Sprintf("%s (%s)", ld.EntryName, ld.Filename)
	}
	return ld.Filename
}

// Load the image. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if ld.loaded {
		return nil
	}

	fi, err := os.Stat(ld.Filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NotFound, ld.Filename)
		}
		return curated.Errorf("romloader: %v", err)
	}

	if !fi.Mode().IsRegular() {
		return curated.Errorf(NotRegular, ld.Filename)
	}

	if ld.IsArchive {
		err = ld.loadArchive()
	} else {
		err = ld.loadFile()
	}
	if err != nil {
		return err
	}

	if len(ld.Data) == 0 {
		logger.Logf(logger.Allow, "romloader", "%s is empty", ld)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && !strings.EqualFold(ld.Hash, hash) {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.loaded = true

	logger.Logf(logger.Verbose, "romloader", "loaded %d bytes from %s", len(ld.Data), ld)
	logger.Logf(logger.Verbose, "romloader", "sha1 %s", ld.Hash)

	return nil
}

func (ld *Loader) loadFile() error {
	f, err := os.Open(ld.Filename)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	defer f.Close()

	ld.Data, err = io.ReadAll(f)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	return nil
}

func (ld *Loader) loadArchive() error {
	afs := archivefs.Path{Registry: ld.Registry}
	err := afs.Set(ld.Filename)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	defer afs.Close()

	if ld.EntryName == "" {
		_, err = afs.First()
	} else {
		err = afs.Select(ld.EntryName)
	}
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	ld.EntryName = afs.Selected()

	r, _, err := afs.Open()
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	ld.Data, err = io.ReadAll(r)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	return nil
}
