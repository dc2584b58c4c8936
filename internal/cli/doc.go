// Package cli parses gridastar's command-line arguments into an app.Config.
package cli
