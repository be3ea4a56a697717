package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

func record(id string, date time.Time, store, seller, coupon string, amount, quantity float64) *domain.SaleRecord {
	return &domain.SaleRecord{
		ID:       id,
		Date:     date,
		Month:    int(date.Month()) - 1,
		Year:     date.Year(),
		Seller:   seller,
		Store:    store,
		City:     domain.NotAvailable,
		Manager:  domain.NotAvailable,
		Brand:    domain.NotAvailable,
		Product:  domain.NotAvailable,
		Code:     domain.NotAvailable,
		Coupon:   coupon,
		Amount:   amount,
		Quantity: quantity,
	}
}

func TestFilterEmptyStateKeepsEverything(t *testing.T) {
	records := []*domain.SaleRecord{
		record("a", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("b", time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC), "Loja B", "Ana", "C-2", 20, 2),
	}

	filtered := Filter(records, domain.FilterState{})

	assert.Equal(t, records, filtered)
}

// Dimensões se combinam por E: loja E ano precisam casar ao mesmo tempo
func TestFilterConjunction(t *testing.T) {
	records := []*domain.SaleRecord{
		record("a", time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("b", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Loja B", "Ana", "C-2", 20, 2),
		record("c", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-3", 30, 3),
	}

	filtered := Filter(records, domain.FilterState{
		Stores: []string{"Loja A"},
		Years:  []string{"2024"},
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].ID)
}

// Dentro de uma dimensão os valores se combinam por OU
func TestFilterDisjunctionWithinDimension(t *testing.T) {
	records := []*domain.SaleRecord{
		record("a", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("b", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), "Loja B", "Ana", "C-2", 20, 2),
		record("c", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), "Loja C", "Bia", "C-3", 30, 3),
	}

	filtered := Filter(records, domain.FilterState{
		Stores: []string{"Loja A", "Loja C"},
	})

	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)
}

func TestFilterByMonthValue(t *testing.T) {
	records := []*domain.SaleRecord{
		record("jan", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("fev", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-2", 20, 2),
	}

	// Janeiro é o mês 0
	filtered := Filter(records, domain.FilterState{Months: []string{"0"}})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "jan", filtered[0].ID)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	records := []*domain.SaleRecord{
		record("a", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Loja A", "Carlos", "C-1", 10, 1),
		record("b", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Loja B", "Ana", "C-2", 20, 2),
		record("c", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "Loja A", "Bia", "C-3", 30, 3),
	}

	filtered := Filter(records, domain.FilterState{Stores: []string{"Loja A"}})

	assert.Equal(t, []string{"a", "c"}, []string{filtered[0].ID, filtered[1].ID})
	assert.Len(t, records, 3)
}
