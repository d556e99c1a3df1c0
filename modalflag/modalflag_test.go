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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/splitrom/modalflag"
	"github.com/jetsetilly/splitrom/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"join", "-o", "out", "a.upper.bin", "a.lower.bin"})
	md.AddSubModes("split", "join")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "JOIN")

	md.NewMode()
	output := md.AddStringAlias([]string{"o", "output"}, "", "output prefix")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *output, "out")
	test.ExpectEquality(t, md.GetArg(0), "a.upper.bin")
	test.ExpectEquality(t, md.GetArg(1), "a.lower.bin")
}

func TestDefaultSubMode(t *testing.T) {
	// unrecognised flags at the top level select the default mode
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--force", "rom.bin"})
	md.AddSubModes("split", "join")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SPLIT")

	md.NewMode()
	force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite without asking")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *force, true)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
	test.ExpectEquality(t, md.Path(), "SPLIT")

	// a non-flag argument that is not a mode also selects the default mode
	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"rom.bin"})
	md.AddSubModes("split", "join")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SPLIT")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
}

func TestInterspersedFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"game.bin", "-f"})
	force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite without asking")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *force, true)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "game.bin")
	test.ExpectEquality(t, md.GetArg(1), "")

	// flags with values can come between arguments. arguments after the
	// terminator are never flags
	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"a.bin", "-o", "out", "b.bin", "--", "-c.bin", "--force"})
	force = md.AddBoolAlias([]string{"f", "force"}, false, "overwrite without asking")
	output := md.AddStringAlias([]string{"o", "output"}, "", "output prefix")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *force, false)
	test.ExpectEquality(t, *output, "out")
	test.DemandEquality(t, len(md.RemainingArgs()), 4)
	test.ExpectEquality(t, md.GetArg(0), "a.bin")
	test.ExpectEquality(t, md.GetArg(1), "b.bin")
	test.ExpectEquality(t, md.GetArg(2), "-c.bin")
	test.ExpectEquality(t, md.GetArg(3), "--force")

	// unknown flags after an argument are still errors
	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"game.bin", "-x"})
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)

	// as is help
	tw := &test.CompareWriter{}
	md = modalflag.Modes{Output: tw}
	md.NewArgs([]string{"game.bin", "-help"})
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestSubModesStopAtArgument(t *testing.T) {
	// with sub-modes, the first argument is a candidate mode and parsing stops
	// there. the flag after it belongs to the next mode
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"join", "-f"})
	md.AddSubModes("split", "join")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "JOIN")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
}

func TestBoolAlias(t *testing.T) {
	for _, arg := range []string{"-f", "--f", "-force", "--force"} {
		md := modalflag.Modes{Output: &test.CompareWriter{}}
		md.NewArgs([]string{arg})
		force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite without asking")

		_, err := md.Parse()
		test.ExpectSuccess(t, err, arg)
		test.ExpectEquality(t, *force, true, arg)
	}
}

func TestChoice(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})
	odd := md.AddChoice("odd-byte", "error", []string{"skip", "lower", "upper", "error"}, "odd byte policy")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *odd, "error")

	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--odd-byte", "LOWER"})
	odd = md.AddChoice("odd-byte", "error", []string{"skip", "lower", "upper", "error"}, "odd byte policy")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *odd, "lower")

	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"--odd-byte", "middle"})
	odd = md.AddChoice("odd-byte", "error", []string{"skip", "lower", "upper", "error"}, "odd byte policy")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, *odd, "error")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpChoice(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddChoice("odd", "error", []string{"skip", "error"}, "odd byte policy")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -odd value\n" +
		"    \todd byte policy: skip, error (default error)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
