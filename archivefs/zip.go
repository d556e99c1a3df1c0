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
	"archive/zip"
	"io"

	"github.com/jetsetilly/splitrom/curated"
)

// ZipDecoder implements the Decoder interface for zip archives.
type ZipDecoder struct{}

// Entries implements the Decoder interface. Entries are in central directory
// order.
func (ZipDecoder) Entries(filename string) ([]Entry, error) {
	if err := checkSignature(filename); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: zip: %v", err)
	}
	defer zr.Close()

	ent := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		ent = append(ent, Entry{
			Name:  f.Name,
			IsDir: f.FileInfo().IsDir(),
			Size:  int64(f.UncompressedSize64),
		})
	}

	return ent, nil
}

// ReadEntry implements the Decoder interface.
func (ZipDecoder) ReadEntry(filename string, name string) ([]byte, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: zip: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, curated.Errorf("archivefs: zip: %v", err)
		}
		defer r.Close()

		b, err := io.ReadAll(r)
		if err != nil {
			return nil, curated.Errorf("archivefs: zip: %v", err)
		}
		return b, nil
	}

	return nil, curated.Errorf("archivefs: zip: no entry named %s", name)
}
