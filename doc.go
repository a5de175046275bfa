// Package pokerlog records poker sessions and computes aggregate
// statistics over them.
//
// The package owns the domain model (Session, HandHistory, Money), the
// append-only session Store backed by a pluggable key-value storage, the
// entry Draft used to build a new session from user input, and the pure
// aggregation reports (lifetime stats, cumulative profit series, location
// and calendar rollups) consumed by the CLI in cmd/.
package pokerlog
