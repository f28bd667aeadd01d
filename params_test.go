package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/oct-tools/automation-contract-tests/octtests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaultsToBothCommand(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{programName}))

	assert.Equal(t, octtests.CommandBoth, p.command)
	assert.Equal(t, defaultBaseURL, p.baseURL)
	assert.Empty(t, p.roomID)
	assert.False(t, p.debug)
}

func TestReadParsesJoinWithRoomID(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{programName, "join", "abc123"}))

	assert.Equal(t, octtests.CommandJoin, p.command)
	assert.Equal(t, "abc123", p.roomID)
}

func TestReadRejectsJoinWithoutRoomID(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{programName, "join"}))
}

func TestReadRejectsUnrecognizedCommand(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{programName, "xyz"}))
}

func TestReadParsesFlags(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{
		programName, "--url", "http://127.0.0.1:9000", "--run", "session", "--debug", "all",
	}))

	assert.Equal(t, octtests.CommandAll, p.command)
	assert.Equal(t, "http://127.0.0.1:9000", p.baseURL)
	assert.True(t, p.debug)
	assert.True(t, p.filters.MustMatch.IsDefined())
	assert.True(t, p.filters.MustMatch.AnyMatch("create session"))
}

func TestReadRejectsInvalidFilterRegex(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{programName, "--run", "(unclosed"}))
}

func TestParseErrorIsPrintedOnlyOnce(t *testing.T) {
	stderr := captureStderr(t)

	var p commandParams
	ok := p.Read([]string{programName, "--no-such-flag"})

	output := stderr()
	assert.False(t, ok)
	assert.Equal(t, 1, strings.Count(output, "unknown flag"), "full output was:\n%s", output)
	assert.Equal(t, 1, strings.Count(output, "Usage"), "full output was:\n%s", output)
}

// captureStderr redirects os.Stderr until the returned function is called,
// which restores it and returns everything written in between.
func captureStderr(t *testing.T) func() string {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	prev := os.Stderr
	os.Stderr = w
	return func() string {
		os.Stderr = prev
		_ = w.Close()
		data, _ := io.ReadAll(r)
		return string(data)
	}
}

func TestCommandBuilderQuotesArguments(t *testing.T) {
	var b commandBuilder
	b.add(programName, "join", "room id; rm -rf /")

	assert.Equal(t, programName+" join 'room id; rm -rf /'", b.String())
}
