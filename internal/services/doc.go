// Package services holds the error classification shared by workflow stages
// and the CLI.
package services
