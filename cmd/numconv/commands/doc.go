// Package commands defines the numconv CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - serve    Run the HTTP conversion server
//   - convert  Convert a value between representations, locally or remotely
//
// # Implementation
//
// The root command loads the configuration and builds a dependency graph
// (logger, converter, optional remote client) before any subcommand runs,
// so handlers share one app context.
package commands
