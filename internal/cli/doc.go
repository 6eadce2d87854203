// Package cli defines the Cobra root command of create-rac. The command
// takes no arguments: it builds the creation pipeline from configuration and
// runs it, printing any fatal error once before exiting.
package cli
