// Package render turns a theme's variable view and a block's options into the
// literal text of one managed block.
//
// Two modes exist. Without a custom template the block is the default
// listing: one line per allowed variable, produced from the block's format by
// substituting <key> and <value>. With a custom template the body goes
// through a two-phase expansion:
//
//  1. Variables. Single-word tokens such as <background> are replaced in one
//     pass, so substituted values are never scanned again. <vars> becomes the
//     default listing and <name> the theme name. Unknown tokens stay in place
//     and produce a warning.
//  2. Imports. <import PATH> tokens are replaced by the expanded content of
//     the referenced file. Imported files are expanded one level deeper and
//     may not import again; doing so fails with ErrImportDepthExceeded.
//
// Warnings are returned as values, fatal problems as the error result.
package render
