package bench

import (
	"strings"
	"testing"
)

const sampleOutput = `goos: linux
goarch: amd64
pkg: github.com/quadcell/tetra/internal/game
BenchmarkComputeInteraction-8   	 5000000	       231 ns/op
BenchmarkPlaceCard-8            	  200000	      8123 ns/op	     512 B/op	       9 allocs/op
PASS
ok  	github.com/quadcell/tetra/internal/game	3.21s
`

func TestParse(t *testing.T) {
	results, err := Parse(strings.NewReader(sampleOutput))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Name != "BenchmarkComputeInteraction" {
		t.Errorf("Name = %q, want BenchmarkComputeInteraction", first.Name)
	}
	if first.Iterations != 5000000 || first.NsPerOp != 231 {
		t.Errorf("Parsed values wrong: %+v", first)
	}
	if first.BytesPerOp != 0 || first.AllocsPerOp != 0 {
		t.Errorf("Expected no benchmem columns: %+v", first)
	}

	second := results[1]
	if second.BytesPerOp != 512 || second.AllocsPerOp != 9 {
		t.Errorf("benchmem columns wrong: %+v", second)
	}
}

func TestParseSkipsGarbage(t *testing.T) {
	input := "BenchmarkBroken-8 not a number\nnothing here\n"
	results, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}
}

func TestDiff(t *testing.T) {
	old := []Result{
		{Name: "BenchmarkA", NsPerOp: 100},
		{Name: "BenchmarkGone", NsPerOp: 50},
	}
	new := []Result{
		{Name: "BenchmarkA", NsPerOp: 80},
		{Name: "BenchmarkAdded", NsPerOp: 10},
	}

	deltas := Diff(old, new)
	if len(deltas) != 3 {
		t.Fatalf("Expected 3 deltas, got %d", len(deltas))
	}

	// sorted by name: A, Added, Gone
	if deltas[0].Name != "BenchmarkA" || deltas[0].Percent != -20 {
		t.Errorf("BenchmarkA delta wrong: %+v", deltas[0])
	}
	if !deltas[1].NewOnly {
		t.Errorf("BenchmarkAdded should be flagged new: %+v", deltas[1])
	}
	if !deltas[2].OldOnly {
		t.Errorf("BenchmarkGone should be flagged removed: %+v", deltas[2])
	}
}

func TestReport(t *testing.T) {
	deltas := Diff(
		[]Result{{Name: "BenchmarkA", NsPerOp: 100}},
		[]Result{{Name: "BenchmarkA", NsPerOp: 90}},
	)

	report := Report(deltas)
	if !strings.Contains(report, "BenchmarkA") {
		t.Error("Report missing benchmark name")
	}
	if !strings.Contains(report, "-10.00%") {
		t.Errorf("Report missing delta:\n%s", report)
	}
}
