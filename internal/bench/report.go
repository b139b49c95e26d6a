// Package bench parses "go test -bench" output and renders colorized
// comparison reports between two runs.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Result is one parsed benchmark line.
type Result struct {
	Name        string
	Iterations  int64
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// Parse reads benchmark results from "go test -bench" output. Non-benchmark
// lines are skipped.
func Parse(r io.Reader) ([]Result, error) {
	var results []Result

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[3] != "ns/op" {
			continue
		}

		iterations, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		nsPerOp, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}

		res := Result{
			// strip the GOMAXPROCS suffix, e.g. BenchmarkStep-8
			Name:       strings.SplitN(fields[0], "-", 2)[0],
			Iterations: iterations,
			NsPerOp:    nsPerOp,
		}

		// optional -benchmem columns
		for i := 4; i+1 < len(fields); i += 2 {
			value, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				continue
			}
			switch fields[i+1] {
			case "B/op":
				res.BytesPerOp = value
			case "allocs/op":
				res.AllocsPerOp = value
			}
		}

		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bench: scan failed: %w", err)
	}
	return results, nil
}

// Delta is the comparison of one benchmark between two runs.
type Delta struct {
	Name    string
	Old     Result
	New     Result
	Percent float64 // ns/op change, negative is faster
	OldOnly bool
	NewOnly bool
}

// Diff matches benchmarks by name and computes per-benchmark deltas.
// Benchmarks present in only one run are included and flagged.
func Diff(old, new []Result) []Delta {
	oldByName := make(map[string]Result, len(old))
	for _, r := range old {
		oldByName[r.Name] = r
	}
	newByName := make(map[string]Result, len(new))
	for _, r := range new {
		newByName[r.Name] = r
	}

	names := make([]string, 0, len(oldByName)+len(newByName))
	for name := range oldByName {
		names = append(names, name)
	}
	for name := range newByName {
		if _, ok := oldByName[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	deltas := make([]Delta, 0, len(names))
	for _, name := range names {
		o, hasOld := oldByName[name]
		n, hasNew := newByName[name]

		d := Delta{Name: name, Old: o, New: n, OldOnly: !hasNew, NewOnly: !hasOld}
		if hasOld && hasNew && o.NsPerOp > 0 {
			d.Percent = (n.NsPerOp - o.NsPerOp) / o.NsPerOp * 100
		}
		deltas = append(deltas, d)
	}
	return deltas
}

var (
	fasterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	slowerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// noiseThreshold is the ns/op change below which a delta is reported as noise.
const noiseThreshold = 2.0 // percent

// Report renders a comparison table for the given deltas.
func Report(deltas []Delta) string {
	var b strings.Builder

	nameWidth := len("Benchmark")
	for _, d := range deltas {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %12s  %12s  %9s",
		nameWidth, "Benchmark", "old ns/op", "new ns/op", "delta")))
	b.WriteString("\n")

	for _, d := range deltas {
		switch {
		case d.OldOnly:
			b.WriteString(neutralStyle.Render(fmt.Sprintf("%-*s  %12.1f  %12s  %9s",
				nameWidth, d.Name, d.Old.NsPerOp, "-", "removed")))
		case d.NewOnly:
			b.WriteString(neutralStyle.Render(fmt.Sprintf("%-*s  %12s  %12.1f  %9s",
				nameWidth, d.Name, "-", d.New.NsPerOp, "new")))
		default:
			cell := fmt.Sprintf("%+8.2f%%", d.Percent)
			style := neutralStyle
			if d.Percent < -noiseThreshold {
				style = fasterStyle
			} else if d.Percent > noiseThreshold {
				style = slowerStyle
			}
			b.WriteString(fmt.Sprintf("%-*s  %12.1f  %12.1f  ",
				nameWidth, d.Name, d.Old.NsPerOp, d.New.NsPerOp))
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	return b.String()
}
