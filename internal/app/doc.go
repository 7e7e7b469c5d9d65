// Package app wires application dependencies for the CLI.
//
// It loads the configuration, builds the logger and the local converter,
// and constructs an optional remote client from Options, exposing them via
// the Wire struct for commands to use.
package app
