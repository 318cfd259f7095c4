package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Log is the parsed content of a result log: the recorded snapshots and,
// when the run finished, the final tally.
type Log struct {
	Snapshots []domain.Snapshot
	Final     *domain.Aggregate
}

// ParseLog reads the sink's line format back: one "won/total; ms" line per
// snapshot and a trailing "won/total" line for the final tally. Blank lines
// are skipped; anything else is malformed.
func ParseLog(r io.Reader) (Log, error) {
	var log Log
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		agg, ms, isFinal, err := parseLine(line)
		if err != nil {
			return Log{}, err
		}
		if isFinal {
			log.Final = &agg
			continue
		}
		agg.SolverTime = time.Duration(ms * float64(time.Millisecond))
		log.Snapshots = append(log.Snapshots, domain.Snapshot{Aggregate: agg})
		log.Final = nil
	}
	if err := scanner.Err(); err != nil {
		return Log{}, fmt.Errorf("read result log: %w", err)
	}
	return log, nil
}

// ReadLog parses the result log at path.
func ReadLog(path string) (Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return Log{}, fmt.Errorf("open result log: %w", err)
	}
	defer f.Close()
	return ParseLog(f)
}

// Last returns the most informative tally in the log: the final one when
// present, otherwise the latest snapshot.
func (l Log) Last() (domain.Aggregate, bool) {
	if l.Final != nil {
		return *l.Final, true
	}
	if n := len(l.Snapshots); n > 0 {
		return l.Snapshots[n-1].Aggregate, true
	}
	return domain.Aggregate{}, false
}

func parseLine(line string) (domain.Aggregate, float64, bool, error) {
	var agg domain.Aggregate
	tally, rest, hasTime := strings.Cut(line, ";")
	if _, err := fmt.Sscanf(strings.TrimSpace(tally), "%d/%d", &agg.Won, &agg.Total); err != nil {
		return agg, 0, false, fmt.Errorf("%w: result line %q", domain.ErrMalformedInput, line)
	}
	if !hasTime {
		return agg, 0, true, nil
	}
	var ms float64
	if _, err := fmt.Sscanf(strings.TrimSpace(rest), "%f", &ms); err != nil {
		return agg, 0, false, fmt.Errorf("%w: result line %q", domain.ErrMalformedInput, line)
	}
	return agg, ms, false, nil
}
