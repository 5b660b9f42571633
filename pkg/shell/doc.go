// Package shell runs external commands for the build tools.
// Both output streams of a child process are drained concurrently, line by line, and every line is
// decoded through a fallback chain of encodings before it is logged and captured.
package shell
