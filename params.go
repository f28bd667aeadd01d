package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oct-tools/automation-contract-tests/framework"
	"github.com/oct-tools/automation-contract-tests/octtests"

	"github.com/alessio/shellescape"
	"github.com/spf13/pflag"
)

const programName = "automation-contract-tests"
const defaultBaseURL = "http://127.0.0.1:8443"

type commandParams struct {
	command  string
	roomID   string
	baseURL  string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	// we print the parse error and usage ourselves, so silence pflag's copy
	fs.SetOutput(io.Discard)
	fs.StringVarP(&c.baseURL, "url", "u", defaultBaseURL, "base URL of the automation endpoint")
	fs.VarP(&c.filters.MustMatch, "run", "r", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		return false
	}

	rest := fs.Args()
	c.command = octtests.CommandBoth
	if len(rest) > 0 {
		c.command = rest[0]
	}
	if len(rest) > 1 {
		c.roomID = rest[1]
	}

	if !octtests.IsValidCommand(c.command) {
		fmt.Fprintf(os.Stderr, "Unrecognized command %q\n", c.command)
		printUsage(os.Stderr)
		return false
	}
	if c.command == octtests.CommandJoin && c.roomID == "" {
		fmt.Fprintln(os.Stderr, "Error: the join command requires a room ID")
		printUsage(os.Stderr)
		return false
	}
	return true
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] [create|join <room-id>|both|all|invalid|validation|server]\n\n", programName)
	fmt.Fprintln(w, "Examples:")
	for _, ex := range [][]string{
		{programName, octtests.CommandCreate},
		{programName, octtests.CommandJoin, "abc123"},
		{programName, octtests.CommandBoth},
		{programName, octtests.CommandAll},
		{programName, octtests.CommandInvalid},
		{programName, octtests.CommandValidation},
		{programName, octtests.CommandServer},
	} {
		var b commandBuilder
		b.add(ex...)
		fmt.Fprintf(w, "  %s\n", b)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "With no command, %q is assumed.\n", octtests.CommandBoth)
}

// commandBuilder assembles a shell command line with proper quoting, for
// showing the user something they can copy and paste.
type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
