package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the random source consumed by randomized game variants.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// SeededRand returns a deterministic PCG stream for seed. Salts split the
// seed into independent streams (for example one per turn), so replaying a
// game from the same seed draws the same values regardless of how many
// draws earlier turns made.
func SeededRand(seed int64, salts ...string) *rand.Rand {
	salt := ""
	for _, s := range salts {
		salt += ":" + s
	}
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"+salt), seedWord(seed, "b"+salt)))
}

// TurnRand is SeededRand salted with the turn number.
func TurnRand(seed int64, turn int) *rand.Rand {
	return SeededRand(seed, "turn", fmt.Sprint(turn))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
