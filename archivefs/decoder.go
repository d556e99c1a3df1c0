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
	"sync"

	"github.com/jetsetilly/splitrom/curated"
)

// UnsupportedFormat is returned when an archive has no decoder or when the
// content of the archive file is not the format indicated by its extension.
const UnsupportedFormat = "archivefs: unsupported archive format: %s"

// EmptyArchive is returned when an archive contains no file entries.
const EmptyArchive = "archivefs: no files found in archive: %s"

// Entry is a single item in an archive.
type Entry struct {
	// name is the full path of the item inside the archive, separated by
	// forward slashes
	Name  string
	IsDir bool
	Size  int64
}

// Decoder implementations provide access to the content of one archive type.
type Decoder interface {
	// Entries returns every item in the archive in the order the archive
	// format stores them
	Entries(filename string) ([]Entry, error)

	// ReadEntry returns the entire content of the named item
	ReadEntry(filename string, name string) ([]byte, error)
}

// Registry associates archive file extensions with a Decoder.
type Registry struct {
	crit     sync.Mutex
	decoders map[string]Decoder
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The new registry has no decoders.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
	}
}

// Register the decoder for the extension. The extension should include the
// leading period and is case insensitive. A nil decoder removes the extension
// from the registry.
func (reg *Registry) Register(ext string, dec Decoder) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	ext = strings.ToUpper(ext)
	if dec == nil {
		delete(reg.decoders, ext)
		return
	}
	reg.decoders[ext] = dec
}

// Decoder returns the decoder for the filename's extension.
func (reg *Registry) Decoder(filename string) (Decoder, error) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	ext := filepath.Ext(filename)
	if dec, ok := reg.decoders[strings.ToUpper(ext)]; ok {
		return dec, nil
	}
	return nil, curated.Errorf(UnsupportedFormat, ext)
}

// Default is the registry used when no other registry is specified. It has
// decoders for every extension in ArchiveExtensions.
var Default *Registry

func init() {
	Default = NewRegistry()
	Default.Register(".zip", ZipDecoder{})
	Default.Register(".7z", SevenZipDecoder{})
	Default.Register(".rar", RarDecoder{})
}

// signatures of the supported archive types. a zip file with no entries
// begins with the end of central directory record
var signatures = map[string][][]byte{
	".ZIP": {[]byte("PK\x03\x04"), []byte("PK\x05\x06")},
	".7Z":  {[]byte("7z\xbc\xaf\x27\x1c")},
	".RAR": {[]byte("Rar!\x1a\x07")},
}

// checkSignature makes sure the file begins with the signature of the archive
// type indicated by the file extension. decoders report unrecognised content
// in different ways so checking the signature first means that the
// UnsupportedFormat error is returned consistently.
func checkSignature(filename string) error {
	ext := filepath.Ext(filename)
	sigs, ok := signatures[strings.ToUpper(ext)]
	if !ok {
		return curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}
	defer f.Close()

	b := make([]byte, 8)
	n, err := io.ReadFull(f, b)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return curated.Errorf("archivefs: %v", err)
	}
	b = b[:n]

	for _, s := range sigs {
		if bytes.HasPrefix(b, s) {
			return nil
		}
	}

	return curated.Errorf(UnsupportedFormat, ext)
}
