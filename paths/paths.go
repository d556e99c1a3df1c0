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
	"os"
	"path/filepath"
	"strings"
)

// Suffixes of the output files.
const (
	UpperSuffix  = ".upper.bin"
	LowerSuffix  = ".lower.bin"
	JoinedSuffix = ".bin"
)

// Pair is the destination of the upper and lower byte planes.
type Pair struct {
	Upper string
	Lower string
}

// Stem returns the filename with the directory and the extension removed. A
// filename that would be left empty (eg. ".bin") is returned with only the
// directory removed.
func Stem(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// Prefix returns the output path, less the suffix, for files named after stem.
// See the package documentation for the rules.
func Prefix(stem string, baseDir string, prefix string) string {
	if prefix == "" {
		return filepath.Join(baseDir, stem)
	}

	if fi, err := os.Stat(prefix); err == nil && fi.IsDir() {
		return filepath.Join(prefix, stem)
	}

	prefix = filepath.Clean(prefix)
	return filepath.Join(filepath.Dir(prefix), Stem(prefix))
}

// OutputPair returns the destination of the upper and lower planes.
func OutputPair(stem string, baseDir string, prefix string) Pair {
	p := Prefix(stem, baseDir, prefix)
	return Pair{
		Upper: p + UpperSuffix,
		Lower: p + LowerSuffix,
	}
}

// JoinedPath returns the destination of an image interleaved from two planes.
func JoinedPath(stem string, baseDir string, prefix string) string {
	return Prefix(stem, baseDir, prefix) + JoinedSuffix
}

// PlaneStem returns the stem of a plane filename with the plane suffix
// removed. For example, "game.upper.bin" returns "game". If the filename does
// not end with either of the plane suffixes the result is the same as Stem().
func PlaneStem(filename string) string {
	base := filepath.Base(filename)
	for _, s := range []string{UpperSuffix, LowerSuffix} {
		if len(base) > len(s) && strings.EqualFold(base[len(base)-len(s):], s) {
			return base[:len(base)-len(s)]
		}
	}
	return Stem(filename)
}
