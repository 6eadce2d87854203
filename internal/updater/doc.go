// Package updater checks the npm registry for a newer published version of
// the CLI. The check is advisory: it prints a single notice when an update
// exists and swallows every failure so it can never block a run.
package updater
