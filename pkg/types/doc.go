// Package types defines the configuration model shared by every themer
// component: themes and their variables, per-file block options, and the
// single-block / multi-block file variants that are flattened into one
// BlockConfig per managed region before rendering.
package types
