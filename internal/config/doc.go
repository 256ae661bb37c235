// Package config handles loading and validation of docbatch configuration.
//
// Configuration is read from $XDG_CONFIG_HOME/docbatch/config.toml
// (default ~/.config/docbatch/config.toml) with environment variable
// overrides.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--output-dir)
//   - DOCBATCH_OUTPUT_DIR, DOCBATCH_SHEET_NAME, DOCBATCH_THEME env vars
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - output_dir: Root directory for generated files (default: "Created-Files")
//   - sheet_name: Sheet name for generated workbooks (default: "Sheet1")
//   - [theme] name/mode: Color preset and light/dark selection
//
// A missing config file is not an error. A file that fails to parse or
// validate is reported and the defaults are used instead.
package config
