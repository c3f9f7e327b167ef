// Package config loads and writes htmltag.json, the project
// configuration for the htmltag CLI.
//
// A config file is optional for library use; the CLI looks for one in
// the working directory or any parent (FindProjectRoot), applies
// defaults for anything unset, and validates the result. Derived
// helpers (Addr, OutputPath, RendererConfig, Logger) translate the
// file's settings into the forms the rest of the program consumes.
package config
