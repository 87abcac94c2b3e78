package minimizer

import (
	"github.com/spaolacci/murmur3"
)

// Seed is the process-wide hash seed. It is read-only and shared by every sketch, so sketches from separate runs can be compared
const Seed uint32 = 42

// Hasher maps a fixed-length byte window to a wide deterministic hash value.
// Implementations must be stateless and collision-free for the equality comparisons made by the winnowing engine
type Hasher func(window []byte) uint64

// getHash is the default oracle: MurmurHash3 x64_128 under the fixed seed, keeping the low 64 bits
func getHash(window []byte) uint64 {
	h1, _ := murmur3.Sum128WithSeed(window, Seed)
	return h1
}
