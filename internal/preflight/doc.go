// Package preflight provides readiness checks for the filesystem paths a
// wording run reads and writes.
//
// The CLI "ocrcorpus config validate" renders one row per check. A failed
// check is informational there unless --strict is given, because a missing
// font directory is tolerated by the run itself.
package preflight
