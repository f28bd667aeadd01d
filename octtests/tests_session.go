package octtests

import (
	"github.com/oct-tools/automation-contract-tests/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoCreateSessionTest asks the service to create a new collaboration session.
// It passes if the service returns HTTP 200 with success true and a non-empty
// room ID, which is returned for chaining into a join; on any failure the
// returned value is absent.
func DoCreateSessionTest(t *T) ldvalue.OptionalString {
	status, body := t.SendAction(client.ActionParams(client.ActionCreate).Build())

	if !assert.Equal(t, 200, status, "unexpected HTTP status creating a session") {
		return ldvalue.OptionalString{}
	}
	if !assert.True(t, body.GetByKey("success").BoolValue(),
		"service did not report success, response was: %s", body.JSONString()) {
		return ldvalue.OptionalString{}
	}

	roomID := body.GetByKey("roomId").StringValue()
	if !assert.NotEqual(t, "", roomID, "service reported success but returned no room ID") {
		return ldvalue.OptionalString{}
	}

	t.Debug("created session with room ID %s", roomID)
	return ldvalue.NewOptionalString(roomID)
}

// DoJoinSessionTest asks the service to join an existing session. An empty
// room ID fails the test immediately without any network call.
func DoJoinSessionTest(t *T, roomID string) {
	require.NotEqual(t, "", roomID, "no room ID to join")

	status, body := t.SendAction(client.ActionParams(client.ActionJoin).
		Set("roomId", ldvalue.String(roomID)).Build())

	assert.Equal(t, 200, status, "unexpected HTTP status joining session %s", roomID)
	assert.True(t, body.GetByKey("success").BoolValue(),
		"service did not report success, response was: %s", body.JSONString())
}
