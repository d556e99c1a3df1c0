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

//go:build !unix

package easyterm

import (
	"os"
)

// TermConfirm implements the Confirmer interface. There is no raw terminal
// support outside of unix so the question is answered with a line of text from
// stdin.
type TermConfirm struct {
	// ignored outside of unix
	Device string
}

var stdinConfirm = NewReaderConfirm(os.Stdin, os.Stderr)

// Confirm implements the Confirmer interface.
func (tc TermConfirm) Confirm(question string) (bool, error) {
	return stdinConfirm.Confirm(question)
}
