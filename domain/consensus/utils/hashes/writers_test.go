package hashes

import "testing"

func TestBlueOrderHashWriter(t *testing.T) {
	hashOf := func(ids ...string) string {
		writer := NewBlueOrderHashWriter()
		for _, id := range ids {
			writer.WriteString(id)
		}
		return writer.Finalize().String()
	}

	if hashOf("genesis", "b1") != hashOf("genesis", "b1") {
		t.Fatalf("hashing the same ids twice produced different hashes")
	}
	if hashOf("genesis", "b1") == hashOf("b1", "genesis") {
		t.Fatalf("the hash does not depend on order")
	}
	if hashOf("ab", "c") == hashOf("a", "bc") {
		t.Fatalf("strings are not length prefixed")
	}
	if len(hashOf()) != 64 {
		t.Fatalf("unexpected hash string length %d", len(hashOf()))
	}
}
