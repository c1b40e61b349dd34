// Package config loads the themer configuration document.
//
// The document is read with koanf from a YAML (.yml, .yaml) or TOML (.toml)
// file, layered over built-in defaults and under THEMER_* environment
// variables, decoded with mapstructure and converted into the read-only
// types.Config the engine works with. Per-block defaults (comment token and
// line format) are applied during conversion and the result is validated
// before it is returned.
package config
