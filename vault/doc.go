// Package vault provides a process-wide access layer for sensitive
// configuration values resolved from the environment.
//
// A Vault is built exactly once at process start from an immutable snapshot
// of key/value pairs, then serves every read for the life of the process.
// There is no reload: reconfiguration requires a restart.
package vault
