// Package logging provides opt-in file logging with rotation for iconcat.
// With --debug, JSON logs go to ~/.iconcat/logs/iconcat.log, rotated by
// lumberjack. Interactive and MCP modes never log to the terminal: the
// TUI owns the screen and MCP owns stdout.
package logging
