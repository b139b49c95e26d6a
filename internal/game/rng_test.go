package game

import "testing"

func TestRngDeterministic(t *testing.T) {
	a := NewRng(42)
	b := NewRng(42)

	for i := 0; i < 100; i++ {
		if a.Byte() != b.Byte() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRngSeed(t *testing.T) {
	r := NewRng(1234)
	if r.Seed() != 1234 {
		t.Errorf("Seed() = %d, want 1234", r.Seed())
	}

	// zero seed is replaced so matches always have a recordable seed
	if NewRng(0).Seed() == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestRngU8Range(t *testing.T) {
	r := NewRng(7)
	for i := 0; i < 1000; i++ {
		v := r.U8(3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("U8(3, 9) = %d, out of range", v)
		}
	}
}

func TestRngIntnRange(t *testing.T) {
	r := NewRng(7)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(16); v < 0 || v >= 16 {
			t.Fatalf("Intn(16) = %d, out of range", v)
		}
	}
}
