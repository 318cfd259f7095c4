package enumerate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/enumerate"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

func drain(t *testing.T, src interface {
	Assignments(context.Context) <-chan domain.Assignment
}) []domain.Assignment {
	t.Helper()
	var out []domain.Assignment
	for a := range src.Assignments(context.Background()) {
		out = append(out, a)
	}
	return out
}

func TestExhaustive(t *testing.T) {
	src, err := enumerate.NewExhaustive(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), src.Total())

	got := drain(t, src)
	want := []domain.Assignment{"000", "001", "010", "011", "100", "101", "110", "111"}
	assert.Equal(t, want, got)

	seen := make(map[domain.Assignment]int)
	for _, a := range got {
		seen[a]++
	}
	for a, n := range seen {
		assert.Equal(t, 1, n, "assignment %s visited %d times", a, n)
	}
}

func TestExhaustive_Parameters(t *testing.T) {
	_, err := enumerate.NewExhaustive(0)
	assert.ErrorIs(t, err, domain.ErrParameter)

	_, err = enumerate.NewExhaustive(enumerate.MaxExhaustiveVertices + 1)
	assert.ErrorIs(t, err, domain.ErrParameter)
}

func TestExhaustive_Cancel(t *testing.T) {
	src, err := enumerate.NewExhaustive(10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := src.Assignments(ctx)
	<-ch
	<-ch
	cancel()

	// The producer must stop; draining whatever is in flight terminates.
	count := 0
	for range ch {
		count++
	}
	assert.Less(t, count, 1024)
}

func TestSampled(t *testing.T) {
	src, err := enumerate.NewSampled(8, 50, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), src.Total())

	got := drain(t, src)
	require.Len(t, got, 50)

	seen := make(map[domain.Assignment]bool)
	for _, a := range got {
		assert.Len(t, string(a), 8)
		assert.False(t, seen[a], "duplicate sample %s", a)
		seen[a] = true
	}
}

func TestSampled_SeedReproducibility(t *testing.T) {
	a, err := enumerate.NewSampled(6, 20, 7)
	require.NoError(t, err)
	b, err := enumerate.NewSampled(6, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, drain(t, a), drain(t, b))

	c, err := enumerate.NewSampled(6, 20, 8)
	require.NoError(t, err)
	assert.NotEqual(t, drain(t, a), drain(t, c))
}

func TestSampled_Parameters(t *testing.T) {
	t.Run("CountEqualsSpace", func(t *testing.T) {
		_, err := enumerate.NewSampled(3, 8, 1)
		assert.ErrorIs(t, err, domain.ErrParameter)
	})

	t.Run("CountExceedsSpace", func(t *testing.T) {
		_, err := enumerate.NewSampled(3, 9, 1)
		assert.ErrorIs(t, err, domain.ErrParameter)
	})

	t.Run("CountJustUnderSpaceRetriesToCompletion", func(t *testing.T) {
		src, err := enumerate.NewSampled(3, 7, 1)
		require.NoError(t, err)
		assert.Len(t, drain(t, src), 7)
	})

	t.Run("ZeroCount", func(t *testing.T) {
		_, err := enumerate.NewSampled(3, 0, 1)
		assert.ErrorIs(t, err, domain.ErrParameter)
	})
}
