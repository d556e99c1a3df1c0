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

//go:build unix

package romwriter

import (
	"io/fs"
	"sync"
	"syscall"
)

var processUmask struct {
	once sync.Once
	mask fs.FileMode
}

// umask returns the file mode creation mask of the process. there is no way
// to read the mask without also setting it so it is set back immediately.
func umask() fs.FileMode {
	processUmask.once.Do(func() {
		m := syscall.Umask(0)
		syscall.Umask(m)
		processUmask.mask = fs.FileMode(m)
	})
	return processUmask.mask
}
