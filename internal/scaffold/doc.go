// Package scaffold creates a new admin app in a target directory. It powers
// the root command: the project name is validated, the target directory is
// checked for conflicting files, and the pipeline writes package.json,
// copies the embedded template, patches src/entry.config.ts, initializes a
// git repository and installs dependencies. When a stage fails, only the
// files known to be produced by that point are removed again.
package scaffold
