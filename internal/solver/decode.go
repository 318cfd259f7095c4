package solver

import (
	"strconv"
	"strings"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Decoder turns one solver transcript into a typed verdict. Decoders are pure
// and tested independently of process invocation.
type Decoder interface {
	Decode(output string) domain.Verdict
}

const regionPrefix = "The winning region is:"

// RegionDecoder handles the energy solver convention: a line
//
//	The winning region is: {0: 5, 1: -1, ...}
//
// mapping vertex ids to values. The analyzed vertex wins iff its value is
// >= 0; a vertex missing from the region loses.
type RegionDecoder struct {
	// Vertex is the analyzed vertex id, normally 0.
	Vertex int
}

// Decode scans the transcript for the winning-region line.
func (d RegionDecoder) Decode(output string) domain.Verdict {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, regionPrefix) {
			continue
		}
		open := strings.Index(line, "{")
		close_ := strings.Index(line, "}")
		if open < 0 || close_ < open {
			return domain.Verdict{Status: domain.ParseFailure}
		}

		found := false
		for _, pair := range strings.Split(line[open+1:close_], ",") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key, kerr := strconv.Atoi(strings.TrimSpace(kv[0]))
			value, verr := strconv.Atoi(strings.TrimSpace(kv[1]))
			if kerr != nil || verr != nil {
				return domain.Verdict{Status: domain.ParseFailure}
			}
			if key == d.Vertex {
				found = true
				if value >= 0 {
					return domain.Win
				}
				return domain.Loss
			}
		}
		if !found {
			// Region parsed fine; the analyzed vertex is simply not in it.
			return domain.Loss
		}
	}
	return domain.Verdict{Status: domain.ParseFailure}
}

// unsolvedWinner is the winner value the CSV solvers emit for a vertex no
// player is known to win.
const unsolvedWinner = "-1"

// CSVDecoder handles the parity/reachability solver convention: one
// comma-separated record per vertex,
//
//	vertex,player,winning_player,strategy,...
//
// e.g. "v0,1,0,v0,0.012". The second column is the vertex's owner and plays
// no part in the verdict. The analyzed player wins iff the winning_player
// column equals WinValue; "-1" there means the solver left the vertex
// undecided.
type CSVDecoder struct {
	Vertex       string `mapstructure:"vertex"`
	WinnerColumn int    `mapstructure:"winner_column"`
	WinValue     string `mapstructure:"win_value"`
}

// DefaultCSVDecoder matches the columns the reference solvers emit.
func DefaultCSVDecoder() CSVDecoder {
	return CSVDecoder{Vertex: "v0", WinnerColumn: 2, WinValue: "0"}
}

// Decode scans the transcript for the analyzed vertex's record.
func (d CSVDecoder) Decode(output string) domain.Verdict {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) <= d.WinnerColumn {
			continue
		}
		if strings.TrimSpace(parts[0]) != d.Vertex {
			continue
		}
		winner := strings.TrimSpace(parts[d.WinnerColumn])
		if winner == unsolvedWinner {
			return domain.Verdict{Status: domain.Undecided}
		}
		if winner == d.WinValue {
			return domain.Win
		}
		return domain.Loss
	}
	return domain.Verdict{Status: domain.ParseFailure}
}
