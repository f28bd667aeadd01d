package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished map[string]bool
	skipped  map[string]string
	errs     []error
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{
		finished: make(map[string]bool),
		skipped:  make(map[string]string),
	}
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.started = append(l.started, id.String())
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errs = append(l.errs, err)
}

func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished[id.String()] = failed
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped[id.String()] = reason
}

func TestRunRecordsPassingAndFailingTests(t *testing.T) {
	logger := newRecordingTestLogger()

	results := Run(nil, logger, func(c *Context) {
		c.Run("good", func(c *Context) {})
		c.Run("bad", func(c *Context) { c.Errorf("something went wrong") })
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad", results.Failures[0].TestID.String())
	assert.False(t, logger.finished["good"])
	assert.True(t, logger.finished["bad"])
	assert.Nil(t, results.Aborted)
}

func TestRunRecordsOneResultPerSubtest(t *testing.T) {
	results := Run(nil, newRecordingTestLogger(), func(c *Context) {
		c.Run("first", func(c *Context) {})
		c.Run("second", func(c *Context) { c.Errorf("nope") })
	})

	require.Len(t, results.Tests, 2, "the root scope must not be counted as a test")
	assert.Equal(t, "first", results.Tests[0].TestID.String())
	assert.Equal(t, "second", results.Tests[1].TestID.String())
}

func TestFailNowStopsTestButNotSiblings(t *testing.T) {
	var reachedAfterFailNow, ranSibling bool

	results := Run(nil, newRecordingTestLogger(), func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("bad state")
			c.FailNow()
			reachedAfterFailNow = true
		})
		c.Run("still runs", func(c *Context) { ranSibling = true })
	})

	assert.False(t, reachedAfterFailNow)
	assert.True(t, ranSibling)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "stops early", results.Failures[0].TestID.String())
}

func TestSkipWithReason(t *testing.T) {
	logger := newRecordingTestLogger()

	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not today")
			c.Errorf("should not get here")
		})
	})

	assert.True(t, results.OK())
	assert.Equal(t, "not today", logger.skipped["skipped"])
}

func TestFilterExcludesTests(t *testing.T) {
	logger := newRecordingTestLogger()
	filter := func(id TestID) bool { return id.String() != "excluded" }
	var ranExcluded bool

	results := Run(filter, logger, func(c *Context) {
		c.Run("included", func(c *Context) {})
		c.Run("excluded", func(c *Context) { ranExcluded = true })
	})

	assert.True(t, results.OK())
	assert.False(t, ranExcluded)
	assert.Contains(t, logger.skipped, "excluded")
}

func TestAbortRunSkipsRemainingTests(t *testing.T) {
	fatal := errors.New("endpoint went away")
	logger := newRecordingTestLogger()
	var ranLater bool

	results := Run(nil, logger, func(c *Context) {
		c.Run("aborts", func(c *Context) { c.AbortRun(fatal) })
		c.Run("never runs", func(c *Context) { ranLater = true })
	})

	assert.False(t, ranLater)
	assert.NotContains(t, logger.started, "never runs")
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "aborts", results.Failures[0].TestID.String())
	assert.Equal(t, fatal, results.Aborted)
}

func TestUnexpectedPanicIsReportedAsFailure(t *testing.T) {
	results := Run(nil, newRecordingTestLogger(), func(c *Context) {
		c.Run("panics", func(c *Context) { panic("boom") })
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
	assert.Nil(t, results.Aborted)
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	logger := newRecordingTestLogger()
	var captured CapturedOutput

	Run(nil, &captureOutputLogger{recordingTestLogger: logger, dest: &captured}, func(c *Context) {
		c.Run("logs things", func(c *Context) {
			c.Debug("first %d", 1)
			c.Debug("second %d", 2)
		})
	})

	require.Len(t, captured, 2)
	assert.Equal(t, "first 1", captured[0].Message)
	assert.Equal(t, "second 2", captured[1].Message)
}

type captureOutputLogger struct {
	*recordingTestLogger
	dest *CapturedOutput
}

func (l *captureOutputLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	*l.dest = debugOutput
	l.recordingTestLogger.TestFinished(id, failed, debugOutput)
}
