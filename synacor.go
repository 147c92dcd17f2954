// This file is part of Gosynacor.
//
// Gosynacor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gosynacor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gosynacor.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gosynacor/gosynacor/hardware"
	"github.com/gosynacor/gosynacor/logger"
	"github.com/gosynacor/gosynacor/modalflag"
	"github.com/gosynacor/gosynacor/programloader"
	"github.com/gosynacor/gosynacor/statsview"
	"github.com/gosynacor/gosynacor/terminal/plainterm"
	"github.com/gosynacor/gosynacor/version"
	"github.com/k0kubun/pp/v3"
)

// exit values
const (
	exitOK       = 0
	exitArgError = 10
	exitRunError = 20
)

func main() {
	// #ctrlc the context is cancelled on the first interrupt. the machine stops
	// at the next instruction boundary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := launch(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(exitVal)
}

// launch processes the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(ctx context.Context, args []string, stdin *os.File, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgError
	}

	switch md.Mode() {
	case "RUN":
		return run(ctx, md, stdin, stdout, stderr)

	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	return exitOK
}

func run(ctx context.Context, md *modalflag.Modes, stdin *os.File, stdout io.Writer, stderr io.Writer) int {
	md.NewMode()
	md.AdditionalHelp("exactly one argument is required: the program binary (local file or http URL)")

	echoLog := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	dump := md.AddString("dump", "", "write graph of machine state to file on exit")
	state := md.AddBool("state", false, "print machine state on error")
	hash := md.AddString("hash", "", "expected SHA1 hash of the program binary")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgError
	}

	if err := md.ExpectArgs(1, 1); err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgError
	}

	if *echoLog {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	md.Visit(func(flag string) {
		logger.Logf(logger.Allow, "flags", "%s: -%s", md.Path(), flag)
	})

	if *stats {
		if err := statsview.Launch(stdout); err != nil {
			fmt.Fprintf(stderr, "* error: %v\n", err)
			return exitArgError
		}
	}

	term := plainterm.NewPlainTerminal(stdin, stdout)
	if err := term.Initialise(); err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitRunError
	}
	defer term.CleanUp()

	m := hardware.NewMachine(term)

	if *dump != "" {
		defer dumpMachine(m, *dump, stderr)
	}

	pl := programloader.NewLoader(md.GetArg(0))
	pl.Hash = *hash

	if err := m.AttachProgram(pl); err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitRunError
	}

	if err := m.Run(ctx); err != nil {
		// make sure all program output is visible before the error message.
		// the deferred CleanUp() will find nothing left to do
		term.CleanUp()

		fmt.Fprintf(stderr, "* error: %v\n", err)
		if *state {
			printer := pp.New()
			printer.SetColoringEnabled(false)
			printer.Fprintln(stderr, m.CPU.State())
		}
		return exitRunError
	}

	return exitOK
}

func dumpMachine(m *hardware.Machine, filename string, stderr io.Writer) {
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return
	}
	defer f.Close()

	m.Visualise(f)
	logger.Logf(logger.Allow, "dump", "machine state written to %s", filename)
}
