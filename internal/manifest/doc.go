// Package manifest patches and validates the package.json of a generated
// project. Patching rewrites only the top-level name member: every other
// member keeps its original bytes and position, and the document is
// re-indented with two spaces.
package manifest
