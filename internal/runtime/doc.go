// Package runtime checks that the host Node.js installation can run the
// generated project. The gate resolves node on PATH, reads its version, and
// compares the major component numerically against MinNodeMajor.
package runtime
