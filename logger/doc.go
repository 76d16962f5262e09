// Package logger provides structured logging for seqkit using zerolog.
//
// Library code never configures output on its own: stages such as
// iterator.Trace and asynciter.WithLogging take a *Logger, and fall back to
// the component logger from Get when nil is passed.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("ingest")
//	log.Debug("pulled", logger.Fields("index", 3))
package logger
