package file_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/adapters/file"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

func TestParseLog(t *testing.T) {
	input := "3/10; 1.500\n7/20; 3.000\n\n9/25\n"

	log, err := file.ParseLog(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, log.Snapshots, 2)
	assert.Equal(t, uint64(3), log.Snapshots[0].Won)
	assert.Equal(t, 1500*time.Microsecond, log.Snapshots[0].SolverTime)

	require.NotNil(t, log.Final)
	assert.Equal(t, domain.Aggregate{Won: 9, Total: 25}, *log.Final)

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(25), last.Total)
}

func TestParseLog_UnfinishedRun(t *testing.T) {
	log, err := file.ParseLog(strings.NewReader("3/10; 1.500\n"))
	require.NoError(t, err)
	assert.Nil(t, log.Final)

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(10), last.Total)
}

func TestParseLog_Empty(t *testing.T) {
	log, err := file.ParseLog(strings.NewReader(""))
	require.NoError(t, err)
	_, ok := log.Last()
	assert.False(t, ok)
}

func TestParseLog_Malformed(t *testing.T) {
	for _, input := range []string{"not a tally\n", "3/10; fast\n"} {
		_, err := file.ParseLog(strings.NewReader(input))
		assert.ErrorIs(t, err, domain.ErrMalformedInput, "input %q", input)
	}
}

func TestRoundTripThroughSink(t *testing.T) {
	path := t.TempDir() + "/results.log"
	sink, err := file.New(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Append(ctx, domain.Snapshot{
		Aggregate: domain.Aggregate{Won: 4, Total: 8, SolverTime: 2 * time.Millisecond},
	}))
	require.NoError(t, sink.Final(ctx, domain.Aggregate{Won: 5, Total: 10}))
	require.NoError(t, sink.Close())

	log, err := file.ReadLog(path)
	require.NoError(t, err)
	require.Len(t, log.Snapshots, 1)
	require.NotNil(t, log.Final)
	assert.Equal(t, uint64(10), log.Final.Total)
}
