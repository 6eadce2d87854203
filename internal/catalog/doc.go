// Package catalog holds the ordered list of project templates and clones a
// chosen template repository into a new project directory.
//
// The built-in entries are embedded from templates.yaml. Users can append
// entries, or replace a built-in one by reusing its id, through the
// "templates" key of the config file.
package catalog
