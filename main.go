package main

import (
	"fmt"
	"os"
	"time"

	"github.com/oct-tools/automation-contract-tests/client"
	"github.com/oct-tools/automation-contract-tests/framework"
	"github.com/oct-tools/automation-contract-tests/octtests"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const probeTimeout = time.Second * 2

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	// The run ID is sent with every request so that harness runs can be
	// correlated with the extension's own logs.
	runID := uuid.NewString()

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		mainDebugLogger = &zl
	}

	fmt.Println("Open Collaboration Tools automation API test harness")
	fmt.Printf("Run ID: %s\n\n", runID)

	ac, err := client.NewAutomationClient(params.baseURL, runID, probeTimeout, mainDebugLogger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Please ensure:")
		fmt.Fprintln(os.Stderr, "1. The editor is running")
		fmt.Fprintln(os.Stderr, "2. The Open Collaboration Tools extension is installed")
		fmt.Fprintln(os.Stderr, "3. The extension is activated")
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results, createdRoom := octtests.RunTestSuite(ac, params.command, params.roomID,
		params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if createdRoom.IsDefined() {
		var b commandBuilder
		b.add(os.Args[0], octtests.CommandJoin, createdRoom.StringValue())
		fmt.Printf("Join the new session manually with: %s\n", b)
	}

	// Failed assertions are reported above but do not change the exit code;
	// only a run that could not complete is an error at the process level.
	if results.Aborted != nil {
		os.Exit(1)
	}
}
