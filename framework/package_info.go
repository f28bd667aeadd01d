// Package framework contains the generic test harness infrastructure, with no
// knowledge of the automation API being tested.
//
// The model is:
//
// 1. The harness communicates with a test target (here, the automation
// endpoint of the collaboration extension) over HTTP, via a client that lives
// in a separate package.
//
// 2. There is a general notion of a test context which is similar to Go's
// *testing.T, allowing pieces of test logic to be associated with a test
// identifier and to accumulate success/failure results. Unlike *testing.T, a
// run can also be aborted as a whole when the target becomes unusable.
//
// The domain-specific code that knows what is being tested is responsible for
// providing the request payloads to send to the target and a domain-specific
// test API on top of the test context.
package framework
