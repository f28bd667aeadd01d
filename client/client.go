// Package client implements the HTTP side of the harness: a thin client for
// the automation endpoint exposed by the Open Collaboration Tools extension.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oct-tools/automation-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Action names understood by the automation endpoint.
const (
	ActionCreate = "create"
	ActionJoin   = "join"
)

const runIDHeader = "X-Test-Run-Id"

// AutomationClient sends JSON action requests to the automation endpoint.
// All calls are synchronous single request/response exchanges; the only state
// shared between calls is the endpoint URL and the run identifier.
type AutomationClient struct {
	baseURL    string
	runID      string
	httpClient *http.Client
	logger     framework.Logger
}

// NewAutomationClient creates an AutomationClient and verifies that the
// automation endpoint is reachable by sending a probe request with a short
// timeout. Progress is reported on startupOutput. An unreachable endpoint is
// returned as an error; the caller decides how to present that to the user.
func NewAutomationClient(
	baseURL string,
	runID string,
	probeTimeout time.Duration,
	debugLogger framework.Logger,
	startupOutput io.Writer,
) (*AutomationClient, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}

	c := &AutomationClient{
		baseURL:    baseURL,
		runID:      runID,
		httpClient: &http.Client{},
		logger:     debugLogger,
	}

	fmt.Fprintf(startupOutput, "Checking automation service at %s... ", baseURL)
	if err := c.probe(probeTimeout); err != nil {
		fmt.Fprintln(startupOutput, "unreachable")
		return nil, fmt.Errorf("cannot connect to automation service at %s: %w", baseURL, err)
	}
	fmt.Fprintln(startupOutput, "ok")

	return c, nil
}

// probe sends a create request with its own timeout, just to find out whether
// anything is listening. Any HTTP response at all, whatever the status, means
// the service is reachable.
func (c *AutomationClient) probe(timeout time.Duration) error {
	params := ActionParams(ActionCreate).Build()
	probeClient := &http.Client{Timeout: timeout}
	resp, err := probeClient.Post(c.baseURL, "application/json", strings.NewReader(params.JSONString()))
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// Do sends a single action request and returns the HTTP status and the
// parsed response body. There is no timeout beyond the transport's default.
// A transport failure or a non-JSON response body returns a non-nil error;
// per the harness error model these are fatal to the whole run, so callers
// are expected to abort rather than continue.
func (c *AutomationClient) Do(params ldvalue.Value, logger framework.Logger) (int, ldvalue.Value, error) {
	if logger == nil {
		logger = c.logger
	}

	body := params.JSONString()
	logger.Printf("POST %s: %s", c.baseURL, body)

	req, err := http.NewRequest("POST", c.baseURL, strings.NewReader(body))
	if err != nil {
		return 0, ldvalue.Null(), err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.runID != "" {
		req.Header.Set(runIDHeader, c.runID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, ldvalue.Null(), fmt.Errorf("request to automation service failed: %w", err)
	}
	respData, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return resp.StatusCode, ldvalue.Null(), fmt.Errorf("error reading response from automation service: %w", err)
	}

	logger.Printf("HTTP %d: %s", resp.StatusCode, string(respData))

	var parsed ldvalue.Value
	if err := json.Unmarshal(respData, &parsed); err != nil {
		return resp.StatusCode, ldvalue.Null(), fmt.Errorf("malformed JSON response from automation service: %s", string(respData))
	}
	return resp.StatusCode, parsed, nil
}

// ActionParams starts building a request payload for the given action.
// Optional fields like roomId and serverUrl can be added with Set; keys that
// are never set are genuinely absent from the JSON, not null.
func ActionParams(action string) ldvalue.ObjectBuilder {
	return ldvalue.ObjectBuild().Set("action", ldvalue.String(action))
}
