package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

// Três linhas do mesmo dia × loja × vendedor com dois cupons distintos
// viram uma linha com as somas e a contagem "2"
func TestBuildTableGroupsByDayStoreSeller(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rows := BuildTable([]*domain.SaleRecord{
		record("a", day, "Loja A", "Carlos", "C-1", 100, 1),
		record("b", day, "Loja A", "Carlos", "C-1", 50, 2),
		record("c", day, "Loja A", "Carlos", "C-2", 30, 3),
	})

	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "2024-01-10|Loja A|Carlos", row.ID)
	assert.Equal(t, 180.0, row.Amount)
	assert.Equal(t, 6.0, row.Quantity)
	assert.Equal(t, "2", row.Coupons)
	assert.Equal(t, "Loja A", row.Store)
	assert.Equal(t, "Carlos", row.Seller)
}

func TestBuildTableSplitsDifferentKeys(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rows := BuildTable([]*domain.SaleRecord{
		record("a", day, "Loja A", "Carlos", "C-1", 100, 1),
		record("b", day, "Loja A", "Ana", "C-1", 50, 1),
		record("c", day.AddDate(0, 0, 1), "Loja A", "Carlos", "C-1", 30, 1),
		record("d", day, "Loja B", "Carlos", "C-1", 20, 1),
	})

	assert.Len(t, rows, 4)
}

func TestBuildTableSortedByDateDescending(t *testing.T) {
	rows := BuildTable([]*domain.SaleRecord{
		record("old", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("new", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-2", 20, 1),
		record("mid", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-3", 30, 1),
	})

	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.After(rows[1].Date))
	assert.True(t, rows[1].Date.After(rows[2].Date))
}

func TestBuildTableStableIDs(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []*domain.SaleRecord{
		record("a", day, "Loja A", "Carlos", "C-1", 100, 1),
		record("b", day, "Loja B", "Ana", "C-2", 50, 1),
	}

	first := BuildTable(records)
	second := BuildTable(records)

	assert.Equal(t, first, second)
}

func TestBuildTableEmpty(t *testing.T) {
	assert.Empty(t, BuildTable(nil))
}
