package pricing

import "time"

// seedFunc returns a pseudo-random seed (override for deterministic Monte
// Carlo tests). It is consulted only when a scenario leaves Seed at zero.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the fallback seed source.
func SetSeedFunc(f func() int64) { seedFunc = f }
