// Package cli is the interactive front end of reeflog: a small REPL with
// auth commands, a five-step dive-log wizard, dive-site browsing and a stats
// view. Each wizard step persists its fields into the draft store
// immediately, so a half-entered log survives quitting the program.
package cli
