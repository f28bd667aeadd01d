package octtests

import (
	"github.com/oct-tools/automation-contract-tests/client"

	"github.com/stretchr/testify/assert"
)

// DoInvalidActionTest sends an action name the service does not know. The
// service must reject it with HTTP 400; any other status, including a 200 or
// a 500, is a failure.
func DoInvalidActionTest(t *T) {
	status, body := t.SendAction(client.ActionParams("invalid").Build())

	assert.Equal(t, 400, status,
		"expected HTTP 400 for an unrecognized action, response was: %s", body.JSONString())
}

// DoMissingRoomIDTest sends a join request with no roomId key at all. The
// service must reject it with HTTP 400 and include an error field explaining
// what was missing.
func DoMissingRoomIDTest(t *T) {
	status, body := t.SendAction(client.ActionParams(client.ActionJoin).Build())

	assert.Equal(t, 400, status, "expected HTTP 400 when roomId is omitted")
	_, hasError := body.TryGetByKey("error")
	assert.True(t, hasError,
		"expected an error field in the response, response was: %s", body.JSONString())
}
