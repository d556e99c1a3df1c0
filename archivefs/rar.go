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
	"errors"
	"io"

	"github.com/nwaples/rardecode/v2"

	"github.com/jetsetilly/splitrom/curated"
)

// RarDecoder implements the Decoder interface for rar archives.
type RarDecoder struct{}

// Entries implements the Decoder interface. Entries are in the order of the
// file headers in the archive.
//
// Multi-volume archives are opened from the first volume.
func (RarDecoder) Entries(filename string) ([]Entry, error) {
	if err := checkSignature(filename); err != nil {
		return nil, err
	}

	rr, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: rar: %v", err)
	}
	defer rr.Close()

	var ent []Entry
	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, curated.Errorf("archivefs: rar: %v", err)
		}
		ent = append(ent, Entry{
			Name:  hdr.Name,
			IsDir: hdr.IsDir,
			Size:  hdr.UnPackedSize,
		})
	}

	return ent, nil
}

// ReadEntry implements the Decoder interface.
func (RarDecoder) ReadEntry(filename string, name string) ([]byte, error) {
	rr, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: rar: %v", err)
	}
	defer rr.Close()

	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, curated.Errorf("archivefs: rar: %v", err)
		}
		if hdr.Name != name {
			continue
		}

		// the reader returns the data of the most recent header
		b, err := io.ReadAll(rr)
		if err != nil {
			return nil, curated.Errorf("archivefs: rar: %v", err)
		}
		return b, nil
	}

	return nil, curated.Errorf("archivefs: rar: no entry named %s", name)
}
