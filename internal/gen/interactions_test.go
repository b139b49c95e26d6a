package gen

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/quadcell/tetra/internal/game"
)

func TestWriteInteractionsMatchesCheckedIn(t *testing.T) {
	checkedIn, err := os.ReadFile("../ai/interactions.go")
	if err != nil {
		t.Fatalf("reading checked-in table: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteInteractions(&buf); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf.Bytes(), checkedIn) {
		t.Error("checked-in interactions table is stale, regenerate with: tetra gen interactions")
	}
}

func TestWriteInteractionsShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteInteractions(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// one comment row per arrow byte, one value per (arrows, cell) pair
	if got := strings.Count(out, "// Arrows: "); got != 256 {
		t.Errorf("%d arrow comments, want 256", got)
	}
	if got := strings.Count(out, "0b"); got != 256*game.BoardCells {
		t.Errorf("%d values, want %d", got, 256*game.BoardCells)
	}
	if !strings.Contains(out, "// Arrows: 1111_1111") {
		t.Error("missing final arrow row")
	}
}

func TestWriteInteractionsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteInteractions(&a); err != nil {
		t.Fatal(err)
	}
	if err := WriteInteractions(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two generation runs produced different output")
	}
}
