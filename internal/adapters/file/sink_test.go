package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/winfrac-dev/winfrac/internal/adapters/file"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports/tests"
)

func snap(won, total uint64) domain.Snapshot {
	return domain.Snapshot{Aggregate: domain.Aggregate{Won: won, Total: total}}
}

func TestFileSink_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	sink, err := file.New(path)
	require.NoError(t, err)

	tests.ResultSinkContract(t, sink, func() ([]string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return strings.Split(strings.TrimSpace(string(data)), "\n"), nil
	})
}

func TestFileSink_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	first, err := file.New(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(context.Background(), snap(1, 2)))
	require.NoError(t, first.Close())

	second, err := file.New(path)
	require.NoError(t, err)
	require.NoError(t, second.Append(context.Background(), snap(3, 4)))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1/2; 0.000\n3/4; 0.000\n", string(data))
}
