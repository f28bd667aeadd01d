package octtests

import (
	"time"

	"github.com/oct-tools/automation-contract-tests/client"
	"github.com/oct-tools/automation-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// joinDelay is how long the chained scenarios wait between creating a session
// and joining it, to emulate a realistic user delay.
var joinDelay = 2 * time.Second

// RunTestSuite runs the tests selected by command against the automation
// endpoint. roomID is only used by the standalone join command. The returned
// OptionalString is the room ID of any session created during the run, so
// the CLI can tell the user how to join it manually.
func RunTestSuite(
	ac *client.AutomationClient,
	command string,
	roomID string,
	filter framework.Filter,
	testLogger framework.TestLogger,
) (framework.Results, ldvalue.OptionalString) {
	var createdRoom ldvalue.OptionalString

	results := framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, client: ac}

		switch command {
		case CommandCreate:
			t.Run("create session", func(t *T) {
				createdRoom = DoCreateSessionTest(t)
			})
		case CommandJoin:
			t.Run("join session", func(t *T) {
				DoJoinSessionTest(t, roomID)
			})
		case CommandInvalid:
			t.Run("invalid action", DoInvalidActionTest)
		case CommandValidation:
			t.Run("join validation", DoMissingRoomIDTest)
		case CommandServer:
			t.Run("custom server URL", DoCustomServerTest)
		case CommandBoth, CommandAll:
			createdRoom = doChainedScenario(t, command == CommandAll)
		}
	})

	return results, createdRoom
}

// doChainedScenario is the create -> wait -> join flow, followed by the
// independent error-handling tests. The join step reuses the room ID returned
// by create; if create produced no room ID (failed, or filtered out), the
// join step is left out since it would have nothing to join.
func doChainedScenario(t *T, withCustomServer bool) ldvalue.OptionalString {
	var roomID ldvalue.OptionalString

	t.Run("create session", func(t *T) {
		roomID = DoCreateSessionTest(t)
	})

	if roomID.IsDefined() {
		time.Sleep(joinDelay)
		t.Run("join session", func(t *T) {
			DoJoinSessionTest(t, roomID.StringValue())
		})
	}

	t.Run("invalid action", DoInvalidActionTest)
	t.Run("join validation", DoMissingRoomIDTest)

	if withCustomServer {
		t.Run("custom server URL", DoCustomServerTest)
	}

	return roomID
}
