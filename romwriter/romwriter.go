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

// Package romwriter writes byte planes to disk.
//
// A file is written in its entirety or not at all. The data is written to a
// temporary file in the destination directory which is then renamed to the
// destination. An interrupted or failed write leaves any existing file
// untouched.
//
// An existing file is only overwritten if the Force field of the Writer is
// true or if the user agrees to it. A declined overwrite is not an error; the
// Result of the Write() indicates that the file was skipped.
package romwriter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/splitrom/byteplane"
	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/easyterm"
	"github.com/jetsetilly/splitrom/logger"
	"github.com/jetsetilly/splitrom/paths"
)

// OutputWrite is returned when the destination cannot be written. The
// placeholder values are the destination and the underlying error.
const OutputWrite = "romwriter: cannot write %s: %v"

// ErrNotRegular is the underlying error of an OutputWrite error when the
// destination exists but is a directory or some other non-regular file.
var ErrNotRegular = fmt.Errorf("not a regular file (%w)", fs.ErrInvalid)

// permissions of a newly created file, before the umask is applied
const newFilePerm = 0o666

// Status of a completed Write().
type Status int

// List of valid Status values.
const (
	Written Status = iota
	Skipped
)

func (s Status) String() string {
	switch s {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// Result of a Write().
type Result struct {
	Path   string
	Size   int
	Status Status
}

// Writer writes files to disk.
type Writer struct {
	// overwrite existing files without asking
	Force bool

	// asks whether an existing file should be overwritten. if Confirm is nil
	// and Force is false then existing files are never overwritten
	Confirm easyterm.Confirmer
}

// Write data to the destination.
func (w Writer) Write(ctx context.Context, dest string, data []byte) (Result, error) {
	res := Result{Path: dest, Size: len(data)}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	perm := fs.FileMode(newFilePerm) &^ umask()

	fi, err := os.Stat(dest)
	if err == nil {
		if !fi.Mode().IsRegular() {
			return res, curated.Errorf(OutputWrite, dest, ErrNotRegular)
		}

		// keep the permissions of the file being replaced
		perm = fi.Mode().Perm()

		if !w.Force {
			ok, err := w.confirm(dest)
			if err != nil {
				return res, err
			}
			if !ok {
				res.Status = Skipped
				logger.Logf(logger.Allow, "romwriter", "not overwriting %s", dest)
				return res, nil
			}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return res, curated.Errorf(OutputWrite, dest, err)
	}

	err = commit(ctx, dest, data, perm)
	if err != nil {
		return res, err
	}

	res.Status = Written
	logger.Logf(logger.Verbose, "romwriter", "wrote %d bytes to %s", len(data), dest)

	return res, nil
}

func (w Writer) confirm(dest string) (bool, error) {
	if w.Confirm == nil {
		return false, nil
	}
	return w.Confirm.Confirm(fmt.Sprintf("%s already exists. overwrite?", dest))
}

// commit writes data to a temporary file and renames it to dest. the temporary
// file is removed on every path that does not end with a successful rename.
func commit(ctx context.Context, dest string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), paths.TempPattern(dest))
	if err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}
	if err := tmp.Sync(); err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}
	if err := tmp.Close(); err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}

	// last chance to abandon the write
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return curated.Errorf(OutputWrite, dest, err)
	}
	committed = true

	return nil
}

// WritePair writes the upper plane and then the lower plane to the
// destinations in the pair. Writing stops at the first error.
func (w Writer) WritePair(ctx context.Context, pair paths.Pair, planes byteplane.Planes) ([2]Result, error) {
	var res [2]Result
	var err error

	res[0], err = w.Write(ctx, pair.Upper, planes.Upper)
	if err != nil {
		return res, err
	}

	res[1], err = w.Write(ctx, pair.Lower, planes.Lower)
	if err != nil {
		return res, err
	}

	return res, nil
}
