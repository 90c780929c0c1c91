// internal/catalog/paginator_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmall/catalog-backend/internal/models"
)

func makeRecords(n int) []models.Product {
	records := make([]models.Product, n)
	for i := range records {
		records[i] = testProduct(fmt.Sprintf("p-%02d", i), float64(i))
	}
	return records
}

func TestPaginateFirstPage(t *testing.T) {
	records := makeRecords(10)

	page, meta := Paginate(records, 1, 4)

	require.Len(t, page, 4)
	assert.Equal(t, "p-00", page[0].Name)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 4, meta.PageSize)
	assert.Equal(t, 10, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginateLastPartialPage(t *testing.T) {
	records := makeRecords(10)

	page, meta := Paginate(records, 3, 4)

	require.Len(t, page, 2)
	assert.Equal(t, "p-08", page[0].Name)
	assert.Equal(t, "p-09", page[1].Name)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginateOutOfRangePageIsEmptyNotError(t *testing.T) {
	records := makeRecords(5)

	page, meta := Paginate(records, 99, 4)

	assert.Empty(t, page)
	assert.Equal(t, 99, meta.Page)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestPaginateClampsPageAndSize(t *testing.T) {
	records := makeRecords(5)

	page, meta := Paginate(records, 0, 0)

	require.Len(t, page, 1)
	assert.Equal(t, "p-00", page[0].Name)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.PageSize)
}

func TestPaginateEmptySequence(t *testing.T) {
	page, meta := Paginate(nil, 1, 20)

	assert.Empty(t, page)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestPaginatePagesCoverSequenceWithoutOverlap(t *testing.T) {
	records := makeRecords(23)
	pageSize := 7

	_, meta := Paginate(records, 1, pageSize)
	require.Equal(t, 4, meta.TotalPages)

	var seen []string
	for p := 1; p <= meta.TotalPages; p++ {
		page, _ := Paginate(records, p, pageSize)
		seen = append(seen, names(page)...)
	}

	require.Len(t, seen, 23)
	for i, name := range names(records) {
		assert.Equal(t, name, seen[i])
	}
}

func TestPaginateReturnsCopy(t *testing.T) {
	records := makeRecords(3)

	page, _ := Paginate(records, 1, 3)
	page[0].Name = "mutated"

	assert.Equal(t, "p-00", records[0].Name)
}
