// Package manifest builds, validates and reads the package.json manifest of a
// generated admin app. The manifest is assembled from a typed base plus an
// ordered list of overrides, validated against an embedded JSON Schema, and
// written with two-space indentation.
package manifest
