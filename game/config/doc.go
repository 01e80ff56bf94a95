// Package config provides puzzle configuration management.
//
// The config package loads JSON puzzle configurations from a directory,
// caches them behind a read-write mutex, and supplies a default when no
// files are available. A configuration names the puzzle, fixes its size and
// shuffle factor, and carries the front-end message strings plus the
// size-to-difficulty label table.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
package config
