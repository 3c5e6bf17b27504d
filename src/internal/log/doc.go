// Package log provides simple leveled logging for mobile-manager.
//
// Messages are written with a colored level prefix: DEBUG (only in verbose
// mode), INFO and WARN go to stdout, ERROR goes to stderr. Output streams can
// be redirected with SetOutput, which is mostly useful in tests.
//
// # Example Usage
//
//	log.Infof("UI server listening on http://%s", addr)
//	log.Warnf("Failed to fetch mobiles: %v", err)
//
//	log.SetVerbose(true)
//	log.Debugf("GET %s -> %d", url, status)
//
// All functions are safe for concurrent use.
package log
