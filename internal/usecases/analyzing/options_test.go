package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

func TestOptions(t *testing.T) {
	recA := record("a", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "Loja B", "Carlos", "C-1", 10, 1)
	recA.City = "Florianópolis"
	recA.Code = "SKU-1"

	recB := record("b", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Ana", "C-2", 20, 1)

	options := Options([]*domain.SaleRecord{recA, recB})

	assert.Equal(t, []string{"2023", "2024"}, options.Years)
	assert.Equal(t, []string{"Loja A", "Loja B"}, options.Stores)
	assert.Equal(t, []string{"Ana", "Carlos"}, options.Sellers)

	// Meses em ordem numérica, com rótulo
	require.Len(t, options.Months, 2)
	assert.Equal(t, domain.MonthOption{Value: "0", Label: "Janeiro"}, options.Months[0])
	assert.Equal(t, domain.MonthOption{Value: "2", Label: "Março"}, options.Months[1])

	// Cidades e códigos omitem o sentinela
	assert.Equal(t, []string{"Florianópolis"}, options.Cities)
	assert.Equal(t, []string{"SKU-1"}, options.Codes)
}

func TestOptionsEmpty(t *testing.T) {
	options := Options(nil)

	assert.Empty(t, options.Years)
	assert.Empty(t, options.Months)
	assert.Empty(t, options.Cities)
}
