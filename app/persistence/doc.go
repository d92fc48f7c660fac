// Package persistence provides file backends for the task store.
// Every backend reads and writes the whole list at once, a save always overwrites
// previous content. Supported formats are JSON (default), the legacy flat text format,
// YAML, TOML and SQLite. A missing file is reported as an error wrapping fs.ErrNotExist,
// undecodable content as an error wrapping ErrMalformed.
package persistence
