// Package filesystem provides the filesystem abstraction used to persist
// rendered artifacts.
//
// Renderers write through FS so output lands atomically: data goes to a
// temporary file in the destination directory and is renamed into place only
// once complete. A failed write never leaves a partial file at the final path.
package filesystem
