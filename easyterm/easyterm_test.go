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

package easyterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/splitrom/easyterm"
	"github.com/jetsetilly/splitrom/test"
)

func TestReaderConfirm(t *testing.T) {
	out := &test.CompareWriter{}
	rc := easyterm.NewReaderConfirm(strings.NewReader("\ny\nYes\nn\nno\n  y\nq\n"), out)

	expected := []bool{true, true, true, false, false, true, false}
	for i, e := range expected {
		ok, err := rc.Confirm("overwrite?")
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, ok, e, i)
	}

	// end of input declines
	ok, err := rc.Confirm("overwrite?")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "overwrite? [Y/n] overwrite? [Y/n] "))
}

func TestReaderConfirmNoNewline(t *testing.T) {
	out := &test.CompareWriter{}
	rc := easyterm.NewReaderConfirm(strings.NewReader("n"), out)
	ok, err := rc.Confirm("overwrite?")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	rc = easyterm.NewReaderConfirm(strings.NewReader("y"), out)
	ok, err = rc.Confirm("overwrite?")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
}

var _ easyterm.Confirmer = easyterm.TermConfirm{}
var _ easyterm.Confirmer = &easyterm.ReaderConfirm{}
