// Package engine applies a theme to the configured target files.
//
// Every file entry is flattened into blocks (one per tag for multi-block
// files) and each block goes through the same cycle:
//
//	read file -> locate marker region -> render -> wrap -> replace -> write
//
// Problems local to one block (unreadable file, missing marker region,
// failed write) are recorded on that block's result and the run moves on.
// An unknown theme aborts the run before any file is touched, and import
// failures inside a custom template abort the run before the block being
// rendered is written.
//
// Blocks that share a target path are always processed in order, each one
// reading the file as left by the previous one. With Options.Jobs above one,
// distinct paths are processed in parallel.
package engine
