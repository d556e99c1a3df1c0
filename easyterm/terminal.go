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

package easyterm

import (
	"fmt"

	"github.com/pkg/term"

	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/logger"
)

// the terminal of the current process on POSIX systems
const controllingTerminal = "/dev/tty"

// key codes in raw mode
const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
	keyReturn    = 0x0d
	keyLinefeed  = 0x0a
)

// TermConfirm implements the Confirmer interface by reading a single key press
// from the controlling terminal. The terminal is used even if stdin and
// stdout have been redirected.
//
// If there is no controlling terminal, every question is declined.
type TermConfirm struct {
	// the terminal device to use. the controlling terminal if empty
	Device string
}

// Confirm implements the Confirmer interface. The return key or 'y' accepts
// the question, ctrl-c returns the Interrupted error and any other key declines
// the question.
func (tc TermConfirm) Confirm(question string) (bool, error) {
	dev := tc.Device
	if dev == "" {
		dev = controllingTerminal
	}

	t, err := term.Open(dev)
	if err != nil {
		logger.Logf(logger.Allow, "easyterm", "no interactive terminal to ask: %s (use --force to overwrite)", question)
		return false, nil
	}
	defer t.Close()

	// raw mode so that we can read a single key press and so that ctrl-c is
	// a key press rather than a signal
	err = t.SetRaw()
	if err != nil {
		return false, curated.Errorf("easyterm: %v", err)
	}
	defer t.Restore()

	_, err = t.Write([]byte(fmt.Sprintf("%s [Y/n] ", question)))
	if err != nil {
		return false, curated.Errorf("easyterm: %v", err)
	}

	b := make([]byte, 1)
	_, err = t.Read(b)

	// output processing is off in raw mode so carriage return is required
	// explicitly
	defer t.Write([]byte("\r\n"))

	if err != nil {
		return false, curated.Errorf("easyterm: %v", err)
	}

	switch b[0] {
	case keyInterrupt:
		return false, curated.Errorf(Interrupted)
	case keyEOF:
		return false, nil
	case keyReturn, keyLinefeed:
		return true, nil
	}

	if b[0] < 0x20 || b[0] > 0x7e {
		return false, nil
	}
	t.Write(b)

	return accept(string(b)), nil
}
