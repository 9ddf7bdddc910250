// Package schema reads dotconf schema files and validates configuration
// values against the types they declare.
//
// A schema file is line oriented. Each entry has the form
//
//	log.file.max_size -> integer
//	debug             -> bool
//	name              -> String
//
// Keys are the full literal keys as they appear in the configuration file,
// dots included; lookups are a flat string match and never descend through
// sections. Blank lines and lines starting with '#' or ';' are skipped.
// Lines without "->" are reported as warnings and skipped.
//
// Recognized type names are "bool", "integer" and "String". Any other type
// name is accepted without validation so that schemas can carry
// documentation-only or future types.
package schema
