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
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Tag    string
	Detail string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.Tag, e.Detail)
}

// Logger writes tagged entries to an echo writer. An entry identical to the
// one before it is not written again.
type Logger struct {
	crit sync.Mutex

	// the most recent entry
	last Entry

	// entries are written to echo as they are added. nil for no output
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
// The new logger has no echo writer.
func NewLogger() *Logger {
	return &Logger{}
}

// Logf adds a formatted entry to the log if the permission allows it.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if !allowed(perm) {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// entries are one line each
	e := Entry{
		Tag:    strings.ReplaceAll(tag, "\n", ""),
		Detail: strings.ReplaceAll(detail, "\n", ""),
	}

	if e == l.last {
		return
	}
	l.last = e

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// SetEcho writes new entries to output as they are added. A nil output
// turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
	l.last = Entry{}
}
