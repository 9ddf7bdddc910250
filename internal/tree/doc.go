// Package tree builds the hierarchical representation of a dotconf
// configuration file.
//
// Every non-blank, non-comment line of the form
//
//	log.file.dir = /var/log/app
//
// is split at the first '=' and its key is split on '.'. The value is stored
// as a Scalar at the path named by the segments; intermediate segments are
// Sections created on demand:
//
//	root, err := tree.Build(lines, nil)
//	dir, _ := root.Lookup("log.file.dir") // Scalar("/var/log/app")
//
// A path is either a Scalar or a Section for the lifetime of a build. Using a
// Scalar as a Section (or assigning a Scalar over a Section) fails the whole
// build with a *ConflictError. Assigning the same leaf twice keeps the last
// value.
//
// When a schema.Schema is supplied, every leaf whose literal key has a
// schema entry is validated before it is stored, and the first validation
// failure fails the build.
package tree
