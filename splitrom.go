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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jetsetilly/splitrom/byteplane"
	"github.com/jetsetilly/splitrom/curated"
	"github.com/jetsetilly/splitrom/easyterm"
	"github.com/jetsetilly/splitrom/logger"
	"github.com/jetsetilly/splitrom/modalflag"
	"github.com/jetsetilly/splitrom/paths"
	"github.com/jetsetilly/splitrom/romloader"
	"github.com/jetsetilly/splitrom/romwriter"
	"github.com/jetsetilly/splitrom/version"
)

// exit codes
const (
	exitSuccess     = 0
	exitError       = 1
	exitInterrupted = 130
)

// the environment a mode runs in. main() uses the standard streams and the
// controlling terminal
type environment struct {
	stdout io.Writer
	stderr io.Writer

	// asks the user whether an existing file can be overwritten
	confirm easyterm.Confirmer

	// color log output written to stderr
	color bool
}

func main() {
	// #ctrlc the context is cancelled on the first interrupt. a second
	// interrupt kills the program in the normal way
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	env := environment{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		confirm: easyterm.TermConfirm{},
		color:   isTerminal(os.Stderr),
	}

	exitVal := launch(ctx, os.Args[1:], env)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(ctx context.Context, args []string, env environment) int {
	if env.color {
		logger.SetEcho(logger.NewColorizer(env.stderr, "yellow"))
	} else {
		logger.SetEcho(env.stderr)
	}
	defer logger.SetEcho(nil)

	md := &modalflag.Modes{Output: env.stdout}
	md.NewArgs(args)
	md.AddSubModes("SPLIT", "JOIN", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("%s splits 16-bit images into upper and lower byte planes", version.ApplicationName))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess
	case modalflag.ParseError:
		fmt.Fprintf(env.stderr, "* error: %v\n", err)
		return exitError
	}

	switch md.Mode() {
	case "SPLIT":
		err = split(ctx, md, env)
	case "JOIN":
		err = join(ctx, md, env)
	case "VERSION":
		err = showVersion(md, env)
	}

	if err != nil {
		if curated.Has(err, easyterm.Interrupted) || errors.Is(err, context.Canceled) {
			fmt.Fprintf(env.stderr, "* interrupted\n")
			return exitInterrupted
		}
		fmt.Fprintf(env.stderr, "* error: %v\n", err)
		return exitError
	}

	return exitSuccess
}

func split(ctx context.Context, md *modalflag.Modes, env environment) error {
	md.NewMode()

	littleEndian := md.AddBool("little-endian", false, "first byte of each word is the lower byte")
	force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite existing files without asking")
	output := md.AddStringAlias([]string{"o", "output"}, "", "output prefix or directory")
	oddByte := md.AddChoice("odd-byte", "error", byteplane.OddPolicies, "handling of the last byte of an odd sized image")
	hash := md.AddString("sha1", "", "expected SHA1 hash of the image")
	entry := md.AddString("entry", "", "file to use when the image is an archive (default: the first file)")
	log := md.AddBool("log", false, "echo all log entries to stderr")
	md.AdditionalHelp("flags may be given before or after the image file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetVerbose(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("image file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	order := byteplane.BigEndian
	if *littleEndian {
		order = byteplane.LittleEndian
	}

	policy, err := byteplane.ParseOddPolicy(*oddByte)
	if err != nil {
		return err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	ld.Hash = *hash
	if *entry != "" {
		if ld.IsArchive {
			ld.EntryName = *entry
		} else {
			logger.Logf(logger.Allow, "splitrom", "%s is not an archive: ignoring --entry", ld.Filename)
		}
	}
	err = ld.Load()
	if err != nil {
		return err
	}

	planes, err := byteplane.Split(ld.Data, order, policy)
	if err != nil {
		return err
	}

	if planes.Odd.Present {
		switch planes.Odd.Policy {
		case byteplane.OddSkip:
			logger.Logf(logger.Allow, "byteplane", "odd number of bytes: skipping last byte (0x%02x)", planes.Odd.Value)
		default:
			logger.Logf(logger.Verbose, "byteplane", "odd number of bytes: last byte (0x%02x) added to %s plane", planes.Odd.Value, planes.Odd.Policy)
		}
	}

	pair := paths.OutputPair(ld.ShortName(), ld.BaseDir(), *output)

	w := romwriter.Writer{
		Force:   *force,
		Confirm: env.confirm,
	}

	res, err := w.WritePair(ctx, pair, planes)
	if err != nil {
		return err
	}

	printResult(env.stdout, "upper", res[0])
	printResult(env.stdout, "lower", res[1])
	fmt.Fprintf(env.stdout, "%d words, %s\n", planes.Words, planes.Order)
	if planes.Odd.Present {
		if planes.Odd.Policy == byteplane.OddSkip {
			fmt.Fprintf(env.stdout, "odd byte 0x%02x skipped\n", planes.Odd.Value)
		} else {
			fmt.Fprintf(env.stdout, "odd byte 0x%02x added to %s plane\n", planes.Odd.Value, planes.Odd.Policy)
		}
	}

	return nil
}

func join(ctx context.Context, md *modalflag.Modes, env environment) error {
	md.NewMode()

	littleEndian := md.AddBool("little-endian", false, "first byte of each word is the lower byte")
	force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite existing files without asking")
	output := md.AddStringAlias([]string{"o", "output"}, "", "output prefix or directory")
	log := md.AddBool("log", false, "echo all log entries to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetVerbose(*log)

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("upper and lower plane files required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	order := byteplane.BigEndian
	if *littleEndian {
		order = byteplane.LittleEndian
	}

	upper := romloader.NewLoader(md.GetArg(0))
	err = upper.Load()
	if err != nil {
		return err
	}

	lower := romloader.NewLoader(md.GetArg(1))
	err = lower.Load()
	if err != nil {
		return err
	}

	image, err := byteplane.Interleave(upper.Data, lower.Data, order)
	if err != nil {
		return err
	}

	name := upper.Filename
	if upper.EntryName != "" {
		name = filepath.FromSlash(upper.EntryName)
	}
	dest := paths.JoinedPath(paths.PlaneStem(name), upper.BaseDir(), *output)

	w := romwriter.Writer{
		Force:   *force,
		Confirm: env.confirm,
	}

	res, err := w.Write(ctx, dest, image)
	if err != nil {
		return err
	}

	printResult(env.stdout, "image", res)
	fmt.Fprintf(env.stdout, "%d bytes, %s\n", len(image), order)

	return nil
}

func showVersion(md *modalflag.Modes, env environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(env.stdout, version.String())

	return nil
}

func printResult(out io.Writer, label string, res romwriter.Result) {
	switch res.Status {
	case romwriter.Written:
		fmt.Fprintf(out, "%s: %s (%d bytes)\n", label, res.Path, res.Size)
	default:
		fmt.Fprintf(out, "%s: %s (%s)\n", label, res.Path, res.Status)
	}
}

// isTerminal returns true if the file is a character device
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == os.ModeCharDevice
}
