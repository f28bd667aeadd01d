// Package octtests contains the test suite for the Open Collaboration Tools
// automation API: the domain-specific test context (T), the individual test
// cases, and the command dispatch that selects which of them to run.
package octtests
