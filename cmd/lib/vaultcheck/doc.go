// Package vaultcheck implements the vaultcheck command line,
// which validates a process's secret configuration before deploys.
package vaultcheck
