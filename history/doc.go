// Package history provides storage for completed and in-flight run traces:
// the events a run emitted and its terminal report, keyed by run id.
//
// The in-memory implementation is volatile and intended for tests, demos
// and short-lived experiment harnesses. It is safe for concurrent use, so
// one store can collect every run of a parallel batch.
package history
