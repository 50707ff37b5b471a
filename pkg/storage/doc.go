// Package storage abstracts the durable medium the guarded store writes to.
//
// A Backend holds raw string records under raw string keys and knows nothing
// about allow-lists, sanitization or serialization - those concerns live in
// pkg/guard. Three implementations are provided:
//
//   - MemoryBackend - mutex-guarded in-process map, useful for tests and
//     ephemeral setups.
//
//   - FileBackend - one file per key under a base directory, written
//     atomically via a temp file and rename so a record is never observed
//     half-written.
//
//   - RedisBackend - records as plain redis string keys without expiration,
//     for setups where several processes share the medium.
//
// The driver is selectable through environment configuration:
//
//	var cfg storage.Config
//	config.MustLoad(&cfg)
//
//	backend, err := storage.New(ctx, cfg)
//	if err != nil {
//	    // handle error
//	}
//
// Backends do not assume exclusive ownership of the medium's key space:
// unrelated code may keep its own keys in the same directory or redis
// database and is never touched.
package storage
