// Package debug provides optional file-based debug logging.
//
// When the TINT_DEBUG environment variable is set to a file path, trace
// events are appended to that file as structured JSON. Otherwise, logging
// is a no-op. Nothing is ever written to stdout or stderr: a styling
// library cannot log onto the streams it styles.
package debug
