// Package logscrub provides the command-line interface for the logscrub
// tool. It configures subcommands (run, rules, history, completion), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/logscrub/logscrub/cmd/logscrub"
//	func main() { logscrub.Execute() }
package logscrub
