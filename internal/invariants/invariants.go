// Package invariants gates contract checks behind the "invariants"
// build tag.
//
// The bitkit entry points validate their index preconditions only when
// the binary is compiled with -tags invariants. Plain builds compile
// the checks out entirely, so an out-of-range call on the checked tier
// is a contract violation, not a handled error. Guard checks as:
//
//	if invariants.Enabled && i >= capacity {
//	    panic(...)
//	}
//
// so that the branch folds away in plain builds.
package invariants
