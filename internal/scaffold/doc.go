// Package scaffold runs the project creation pipeline: version gate, update
// advisory, prompts, template clone, manifest patch, cleanup, and dependency
// install. Stages run strictly in order and the first error stops the run.
package scaffold
