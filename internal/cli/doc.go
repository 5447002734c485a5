// Package cli defines the command-line surface: flags, the cobra root
// command, viper configuration and credential lookup.
package cli
