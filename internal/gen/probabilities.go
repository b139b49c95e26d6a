package gen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quadcell/tetra/internal/game"
)

// WinTable computes, for every (attack, defense) stat pair, the probability
// that the attack roll strictly beats the defense roll under the given
// battle system. Ties count as losses for the attacker, matching match
// resolution.
func WinTable(system game.BattleSystem) ([16][16]float64, error) {
	switch system.Kind {
	case game.BattleDeterministic:
		return deterministicTable(), nil
	case game.BattleOriginal:
		return originalTable(), nil
	case game.BattleDice:
		if system.Sides < 2 {
			return [16][16]float64{}, fmt.Errorf("gen: dice need at least 2 sides, got %d", system.Sides)
		}
		return diceTable(system.Sides), nil
	default:
		return [16][16]float64{}, fmt.Errorf("gen: unsupported battle system %q", system)
	}
}

func deterministicTable() [16][16]float64 {
	var table [16][16]float64
	for att := 0; att < 16; att++ {
		for def := 0; def < 16; def++ {
			if att > def {
				table[att][def] = 1
			}
		}
	}
	return table
}

// originalTable enumerates both raw bytes behind an original-system roll for
// each stat value, giving exact per-roll counts, then pits the attack and
// defense distributions against each other.
func originalTable() [16][16]float64 {
	var counts [16][256]uint64
	for value := 0; value < 16; value++ {
		min := uint8(value) << 4
		max := min | 0xF
		for n1 := 0; n1 < 256; n1++ {
			stat1 := game.MapByteToRange(uint8(n1), min, max)
			for n2 := 0; n2 < 256; n2++ {
				stat2 := game.MapByteToRange(uint8(n2), 0, stat1)
				counts[value][stat1-stat2]++
			}
		}
	}

	var table [16][16]float64
	for att := 0; att < 16; att++ {
		for def := 0; def < 16; def++ {
			var total, wins uint64
			for attRoll := 0; attRoll < 256; attRoll++ {
				ac := counts[att][attRoll]
				if ac == 0 {
					continue
				}
				for defRoll := 0; defRoll < 256; defRoll++ {
					dc := counts[def][defRoll]
					if dc == 0 {
						continue
					}
					total += ac * dc
					if attRoll > defRoll {
						wins += ac * dc
					}
				}
			}
			table[att][def] = float64(wins) / float64(total)
		}
	}
	return table
}

// diceCounts returns how many of the sides^count outcomes of rolling count
// dice produce each sum, indexed by sum. Zero dice always sum to zero.
func diceCounts(sides, count uint8) []uint64 {
	ways := []uint64{1}
	for die := uint8(0); die < count; die++ {
		next := make([]uint64, len(ways)+int(sides))
		for sum, n := range ways {
			if n == 0 {
				continue
			}
			for face := 1; face <= int(sides); face++ {
				next[sum+face] += n
			}
		}
		ways = next
	}
	return ways
}

func diceTable(sides uint8) [16][16]float64 {
	counts := make([][]uint64, 16)
	for value := uint8(0); value < 16; value++ {
		counts[value] = diceCounts(sides, value)
	}

	var table [16][16]float64
	for att := 0; att < 16; att++ {
		for def := 0; def < 16; def++ {
			var total, wins float64
			for attRoll, ac := range counts[att] {
				if ac == 0 {
					continue
				}
				for defRoll, dc := range counts[def] {
					if dc == 0 {
						continue
					}
					pairs := float64(ac) * float64(dc)
					total += pairs
					if attRoll > defRoll {
						wins += pairs
					}
				}
			}
			table[att][def] = wins / total
		}
	}
	return table
}

const probabilitiesHeader = `// Code generated by "tetra gen probabilities"; DO NOT EDIT.

package ai

import "github.com/quadcell/tetra/internal/game"

// WinProbability returns the chance that the attack stat beats the defense
// stat under the given battle system. Ties count as defender wins. Systems
// without a generated table get an uninformative 0.5.
func WinProbability(system game.BattleSystem, att, def uint8) float64 {
	key := att<<4 | def
	switch system.Kind {
	case game.BattleDeterministic:
		return probsDeterministic[key]
	case game.BattleOriginal:
		return probsOriginal[key]
	case game.BattleDice:
		if system.Sides == 6 {
			return probsDice6[key]
		}
	}
	return 0.5
}
`

// WriteProbabilities emits the win-probability tables for the systems the
// CPU opponent supports out of the box: deterministic, original and
// six-sided dice.
func WriteProbabilities(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, probabilitiesHeader)
	fmt.Fprintln(bw)

	tables := []struct {
		name   string
		system game.BattleSystem
	}{
		{"probsDeterministic", game.DeterministicSystem()},
		{"probsOriginal", game.OriginalSystem()},
		{"probsDice6", game.DiceSystem(6)},
	}
	for i, entry := range tables {
		table, err := WinTable(entry.system)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "var %s = [256]float64{\n", entry.name)
		for att := 0; att < 16; att++ {
			fmt.Fprintf(bw, "\t// Attack: %X\n", att)
			for def := 0; def < 16; def++ {
				fmt.Fprintf(bw, "\t%.6f, // %X v %X\n", table[att][def], att, def)
			}
		}
		fmt.Fprintln(bw, "}")
	}

	return bw.Flush()
}
