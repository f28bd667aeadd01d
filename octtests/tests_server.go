package octtests

import (
	"github.com/oct-tools/automation-contract-tests/client"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// customServerURL is the public OCT server, used to verify that the
// extension honors an explicit serverUrl instead of its configured default.
const customServerURL = "https://api.open-collab.tools/"

// DoCustomServerTest creates a session through an explicitly specified
// collaboration server rather than the extension's configured one.
func DoCustomServerTest(t *T) {
	status, body := t.SendAction(client.ActionParams(client.ActionCreate).
		Set("serverUrl", ldvalue.String(customServerURL)).Build())

	assert.Equal(t, 200, status, "unexpected HTTP status creating a session via custom server")
	assert.True(t, body.GetByKey("success").BoolValue(),
		"service did not report success, response was: %s", body.JSONString())
}
