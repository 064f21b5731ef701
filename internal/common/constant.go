// Package common contains constants and small helpers shared by the inkwell
// client packages.
package common

// RequestIDHeader carries a per-request id on every outbound API call.
const RequestIDHeader = "X-Request-ID"

// Keys of the local metadata store.
const (
	// SessionKeyPrefix is shared by every session key.
	SessionKeyPrefix  = "persist:"
	// SessionStorageKey holds the serialized session snapshot.
	SessionStorageKey = "persist:root"
	// SessionSavedAtKey holds the RFC 3339 time of the last snapshot write.
	SessionSavedAtKey = "persist:saved_at"
)

// DateLayout is the wire and input format of dates of birth.
const DateLayout = "2006-01-02"
