// internal/datasource/memory_test.go
package datasource

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmall/catalog-backend/internal/catalog"
)

func TestMemorySourceListAll(t *testing.T) {
	source := NewMemorySource(Fixtures(), 0)

	records, err := source.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestMemorySourceListAllReturnsClones(t *testing.T) {
	source := NewMemorySource(Fixtures(), 0)

	first, err := source.ListAll(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Categories[0] = "mutated"

	second, err := source.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.NotEqual(t, "mutated", second[0].Categories[0])
}

func TestMemorySourceFetchOne(t *testing.T) {
	records := Fixtures()
	source := NewMemorySource(records, 0)

	got, err := source.FetchOne(context.Background(), records[2].ID)
	require.NoError(t, err)
	assert.Equal(t, records[2].Name, got.Name)
}

func TestMemorySourceFetchOneNotFound(t *testing.T) {
	source := NewMemorySource(Fixtures(), 0)

	_, err := source.FetchOne(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, catalog.IsNotFound(err))
}

func TestMemorySourceHonorsCancellation(t *testing.T) {
	source := NewMemorySource(Fixtures(), 500*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := source.ListAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestMemorySourceZeroLatencyStillChecksContext(t *testing.T) {
	source := NewMemorySource(Fixtures(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
