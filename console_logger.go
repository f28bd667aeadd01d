package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oct-tools/automation-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgBlue)
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	skipColor   = color.New(color.FgYellow)
)

// ConsoleTestLogger prints one colored status line per test. Colors are
// disabled automatically when stdout is not a terminal.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", headerColor.Sprint(id))
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Printf("  %s %s\n", failColor.Sprint("✗ FAILED:"), id)
	} else {
		fmt.Printf("  %s %s\n", passColor.Sprint("✓ PASSED:"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  %s %s\n", skipColor.Sprint("- SKIPPED:"), id)
	} else {
		fmt.Printf("  %s %s (%s)\n", skipColor.Sprint("- SKIPPED:"), id, reason)
	}
}
