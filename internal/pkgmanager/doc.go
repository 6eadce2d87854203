// Package pkgmanager detects the Node package manager available on the host
// and runs its install command in a project directory.
package pkgmanager
