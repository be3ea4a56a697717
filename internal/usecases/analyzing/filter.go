// Package analyzing contém o núcleo analítico: filtragem multidimensional,
// agregações de resumo/ranking/série e o agrupamento tabular. Todas as
// funções são puras e recomputam o resultado inteiro a cada chamada
package analyzing

import (
	"strconv"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

// Filter aplica o filtro multidimensional sobre os registros, preservando a
// ordem relativa e sem mutar a entrada. Dimensão sem seleção não restringe;
// as oito dimensões se combinam por E lógico
func Filter(records []*domain.SaleRecord, filters domain.FilterState) []*domain.SaleRecord {
	if filters.IsEmpty() {
		return records
	}

	years := toSet(filters.Years)
	months := toSet(filters.Months)
	sellers := toSet(filters.Sellers)
	stores := toSet(filters.Stores)
	cities := toSet(filters.Cities)
	managers := toSet(filters.Managers)
	brands := toSet(filters.Brands)
	codes := toSet(filters.Codes)

	filtered := make([]*domain.SaleRecord, 0, len(records))

	for _, record := range records {
		if !allowed(years, strconv.Itoa(record.Year)) {
			continue
		}
		if !allowed(months, strconv.Itoa(record.Month)) {
			continue
		}
		if !allowed(sellers, record.Seller) {
			continue
		}
		if !allowed(stores, record.Store) {
			continue
		}
		if !allowed(cities, record.City) {
			continue
		}
		if !allowed(managers, record.Manager) {
			continue
		}
		if !allowed(brands, record.Brand) {
			continue
		}
		if !allowed(codes, record.Code) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}

	return set
}

func allowed(set map[string]bool, value string) bool {
	if set == nil {
		return true
	}

	return set[value]
}
