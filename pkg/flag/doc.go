// Package flag provides persisted feature flag records and the access
// decision algorithm used by the guard package.
//
// A flag is a named boolean capability gate with an optional user allow-list.
// The package decides, per flag and per user, whether a requester passes:
//
//   - disabled flag: denies everyone, regardless of the allow-list
//   - enabled flag, empty allow-list: global, allows everyone
//   - enabled flag, non-empty allow-list: targeted, allows listed users only
//   - unknown flag: does not exist, denies everyone
//
// Unknown flags and records with a corrupted enabled marker never produce an
// error; they fail closed. Only backend I/O failures surface as errors, and
// those propagate to the caller without retries.
//
// # Architecture
//
// The Store interface is the extension point. Two implementations ship with
// the package:
//
//  1. RedisStore - production store over a Redis hash + set pair per flag
//  2. MemoryStore - mutex-guarded map for tests and single-process use
//
// # Usage
//
// Redis-backed setup:
//
//	import (
//		"github.com/dmitrymomot/flaggate/pkg/flag"
//		"github.com/dmitrymomot/flaggate/pkg/redis"
//	)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := flag.NewRedisStore(client, "flags")
//
//	// Enable "beta" for two users only
//	if err := store.SetFlag(ctx, "beta", true, "u1", "u2"); err != nil {
//		// Handle error
//	}
//
//	allowed, err := store.IsUserAllowed(ctx, "beta", "u1")
//	if err != nil {
//		// Backend failure
//	}
//
// SetFlag wholesale-replaces the record: calling it again with a different
// allow-list leaves only the second list present, and calling it with no
// users deletes the list entirely. Access is revoked by setting the flag
// disabled, not by deleting keys.
//
// # Consistency
//
// SetFlag is not transactional. The enabled marker and the allow-list are
// written with separate commands, so a concurrent reader can observe the new
// marker with the previous list still in place. Concurrent writers to the
// same flag have no defined ordering; the last completed write wins.
package flag
