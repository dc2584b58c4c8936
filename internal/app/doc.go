// Package app wires configuration, logging and scenario execution together
// for the gridastar command.
package app
