package analyzing

import (
	"sort"
	"strconv"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

// Options lista os valores distintos disponíveis para cada dimensão de
// filtro no conjunto carregado. Cidades e códigos omitem vazios e "N/A"
// para não poluir a seleção
func Options(records []*domain.SaleRecord) *domain.FilterOptions {
	years := make(map[string]bool)
	months := make(map[int]bool)
	sellers := make(map[string]bool)
	stores := make(map[string]bool)
	cities := make(map[string]bool)
	managers := make(map[string]bool)
	brands := make(map[string]bool)
	codes := make(map[string]bool)

	for _, record := range records {
		years[strconv.Itoa(record.Year)] = true
		months[record.Month] = true
		sellers[record.Seller] = true
		stores[record.Store] = true
		managers[record.Manager] = true
		brands[record.Brand] = true

		if record.City != "" && record.City != domain.NotAvailable {
			cities[record.City] = true
		}
		if record.Code != "" && record.Code != domain.NotAvailable {
			codes[record.Code] = true
		}
	}

	return &domain.FilterOptions{
		Years:    sortedValues(years),
		Months:   monthOptions(months),
		Sellers:  sortedValues(sellers),
		Stores:   sortedValues(stores),
		Cities:   sortedValues(cities),
		Managers: sortedValues(managers),
		Brands:   sortedValues(brands),
		Codes:    sortedValues(codes),
	}
}

func sortedValues(set map[string]bool) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}

	sort.Strings(values)

	return values
}

func monthOptions(set map[int]bool) []domain.MonthOption {
	indexes := make([]int, 0, len(set))
	for m := range set {
		indexes = append(indexes, m)
	}

	sort.Ints(indexes)

	options := make([]domain.MonthOption, 0, len(indexes))
	for _, m := range indexes {
		options = append(options, domain.MonthOption{
			Value: strconv.Itoa(m),
			Label: domain.MonthNames[m],
		})
	}

	return options
}
