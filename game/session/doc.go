// Package session manages puzzle session storage and persistence.
//
// The Manager keeps active sessions in memory behind a read-write mutex,
// keyed by case-insensitive 4-character IDs. With a SessionPersistence
// attached, sessions are written to disk as JSON after every state change
// and lazily reloaded on access, so a server restart does not lose games
// in progress.
package session
