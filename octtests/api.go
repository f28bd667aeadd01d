package octtests

import (
	"github.com/oct-tools/automation-contract-tests/client"
	"github.com/oct-tools/automation-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Commands selectable from the harness command line. Each selects one test
// case, except for CommandBoth and CommandAll which run chained scenarios.
const (
	CommandCreate     = "create"
	CommandJoin       = "join"
	CommandBoth       = "both"
	CommandAll        = "all"
	CommandInvalid    = "invalid"
	CommandValidation = "validation"
	CommandServer     = "server"
)

var AllCommands = []string{
	CommandCreate,
	CommandJoin,
	CommandBoth,
	CommandAll,
	CommandInvalid,
	CommandValidation,
	CommandServer,
}

func IsValidCommand(command string) bool {
	for _, c := range AllCommands {
		if c == command {
			return true
		}
	}
	return false
}

// T represents a test or subtest in the automation API suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, plus the captured debug
// logging provided by our lower-level framework package. To make test
// assertions, use the assert and require packages, passing the *T as if it
// were a *testing.T.
type T struct {
	context *framework.Context
	client  *client.AutomationClient
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest against the same automation endpoint. This is equivalent
// to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, client: t.client})
	})
}

// Debug logs some debug output for the test. The output is passed to the test
// logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// SendAction sends one action request to the automation endpoint and returns
// the HTTP status and parsed body. A transport or parse error aborts the
// whole run: the automation endpoint is a single local service, so once a
// request fails at that level, every remaining test would fail the same way.
func (t *T) SendAction(params ldvalue.Value) (int, ldvalue.Value) {
	status, body, err := t.client.Do(params, t.context.DebugLogger())
	if err != nil {
		t.context.AbortRun(err)
	}
	return status, body
}
