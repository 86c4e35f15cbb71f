package bot

import "math/rand"

// botRng is the package-level random source used by strategies that were
// not given their own. When nil, the functions below delegate to the global
// math/rand default. Use SeedBotRng to set a deterministic source for
// reproducible benchmarks.
var botRng *rand.Rand

// SeedBotRng sets a deterministic random source for reproducible bot behavior.
func SeedBotRng(seed int64) {
	botRng = rand.New(rand.NewSource(seed))
}

// ResetBotRng reverts to the default (non-deterministic) global random source.
func ResetBotRng() {
	botRng = nil
}

// intn draws from r when set, otherwise from the package source.
func intn(r *rand.Rand, n int) int {
	if r != nil {
		return r.Intn(n)
	}
	return botIntn(n)
}

func botIntn(n int) int {
	if botRng != nil {
		return botRng.Intn(n)
	}
	return rand.Intn(n)
}

func botInt63() int64 {
	if botRng != nil {
		return botRng.Int63()
	}
	return rand.Int63()
}
