// Package preflight provides readiness checks for the directories and
// external services parlo depends on.
//
// The CLI "parlo status" command renders all checks; "parlo serve" runs
// them once at startup and logs failures without refusing to start, since
// the translation endpoint may recover while the bot is running.
package preflight
