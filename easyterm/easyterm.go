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

// Package easyterm asks the user questions. The TermConfirm type is a wrapper
// for "github.com/pkg/term", reading a single key press from the controlling
// terminal. The ReaderConfirm type reads whole lines from any io.Reader.
package easyterm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/splitrom/curated"
)

// Interrupted is returned when the user presses the interrupt key (ctrl-c)
// in response to a question.
const Interrupted = "easyterm: interrupted"

// Confirmer implementations ask the user a yes/no question. Returns true if
// the user agreed.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// accept returns true if the response accepts the question. The default
// response, an empty line, accepts.
func accept(response string) bool {
	response = strings.TrimSpace(response)
	if response == "" {
		return true
	}
	return response[0] == 'y' || response[0] == 'Y'
}

// ReaderConfirm implements the Confirmer interface by reading lines from an
// io.Reader. Suitable for when input has been redirected.
type ReaderConfirm struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderConfirm is the preferred method of initialisation for the
// ReaderConfirm type. Questions are written to out.
func NewReaderConfirm(in io.Reader, out io.Writer) *ReaderConfirm {
	return &ReaderConfirm{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements the Confirmer interface. An empty line or a line beginning
// with 'y' accepts the question. The end of input declines it.
func (rc *ReaderConfirm) Confirm(question string) (bool, error) {
	fmt.Fprintf(rc.out, "%s [Y/n] ", question)

	s, err := rc.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			// the final line of input might not have a newline
			if s != "" {
				fmt.Fprintln(rc.out)
				return accept(s), nil
			}
			fmt.Fprintln(rc.out)
			return false, nil
		}
		return false, curated.Errorf("easyterm: %v", err)
	}

	return accept(s), nil
}
