package minimizer

import (
	"testing"
)

// the oracle must be deterministic for the fixed process-wide seed
func TestHashDeterminism(t *testing.T) {
	window := []byte("ACTGCGT")
	if getHash(window) != getHash(window) {
		t.Fatal("hash oracle is not deterministic")
	}
	copied := append([]byte(nil), window...)
	if getHash(window) != getHash(copied) {
		t.Fatal("hash oracle depends on buffer identity, not content")
	}
}

// distinct windows must hash apart for the equality comparisons made by the engine
func TestHashSeparation(t *testing.T) {
	if getHash([]byte("ACTGCGT")) == getHash([]byte("ACTGCGA")) {
		t.Fatal("distinct k-mers collided")
	}
	if getHash([]byte("ACTGCGT")) == getHash([]byte("ACTGCG")) {
		t.Fatal("a k-mer collided with its own prefix")
	}
}

// the seed is part of the sketch contract and can't drift between versions
func TestHashSeed(t *testing.T) {
	if Seed != 42 {
		t.Fatalf("hash seed changed (%d) - existing indices would no longer be comparable", Seed)
	}
}
