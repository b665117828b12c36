// Package cli implements the jobtread-mcp command line with cobra.
//
// Services are wired once in the root command's pre-run hook from the
// environment, the settings file and the global flags. Tests inject a
// query service directly and skip the wiring.
package cli
