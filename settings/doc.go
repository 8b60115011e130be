// Package settings translates named secrets into typed application settings.
//
// It declares the application's required secret names once, as an explicit
// list, and gates construction on validating the full list so that a
// misconfigured process fails at boot with every missing name at once.
package settings
