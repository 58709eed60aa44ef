package montecarlo

import (
	"fmt"
	"hash/fnv"
)

// seedWord hashes the run seed and a salt into a 64-bit PRNG seed.
func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// caseSeed derives the per-case seed word from the run seed, so every case
// in a batch draws from its own stream.
func caseSeed(runSeed int64, caseName string) uint64 {
	return seedWord(runSeed, "case:"+caseName)
}

// trialSeed derives the per-trial seed word. All randomness in a trial is a
// function of (case seed, trial index), so results do not depend on worker
// count or execution order.
func trialSeed(caseSeed uint64, trial int) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:trial:%d", caseSeed, trial)))
	return h.Sum64()
}
