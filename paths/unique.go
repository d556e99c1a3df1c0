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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TempPattern returns a pattern suitable for os.CreateTemp() that creates a
// temporary file next to the destination. The file is hidden on POSIX systems
// and will not collide with the destination or any other temporary file.
//
// Format of the pattern is:
//
//	.filename.*.tmp
func TempPattern(dest string) string {
	base := strings.TrimSpace(filepath.Base(dest))
	return fmt.Sprintf(".%s.*.tmp", base)
}
