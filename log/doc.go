// Package log wraps zap's sugared logger with a small, opinionated surface.
//
// The default logger is a nop logger.
// Call InitLogger or InitLoggerJSON early in your main function to get actual
// log output.
package log
