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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/splitrom/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each line is written with the pen and the remainder of the line is written
// normally.
type Colorizer struct {
	out io.Writer
	pen string
}

// NewColorizer is the preferred method if initialisation for the Colorizer
// type. The pen should be one of the names in the ansi.Pens table. An
// unrecognised name results in no coloring.
func NewColorizer(out io.Writer, pen string) Colorizer {
	return Colorizer{out: out, pen: ansi.Pens[pen]}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	if c.pen == "" {
		return c.out.Write(p)
	}

	s := strings.Builder{}
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			continue
		}
		s.WriteString(c.pen)
		s.WriteString(tag)
		s.WriteString(ansi.NormalPen)
		s.WriteString(": ")
		s.WriteString(detail)
	}

	_, err = io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	// report the number of bytes from p that were consumed, not the number of
	// bytes written including the ANSI sequences
	return len(p), nil
}
