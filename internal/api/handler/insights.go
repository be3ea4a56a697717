package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/pkg/log"
)

// GetInsights devolve os agregados do lote carregado depois de aplicar os
// filtros da query string.
func GetInsights(data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := filterStateFromQuery(r.URL.Query())
		records := analyzing.Filter(data.Records(), filters)

		logger.WithFields(log.Fields{
			"records":  len(records),
			"filtered": !filters.IsEmpty(),
		}).Debug("insights: calculando agregados")

		insights := analyzing.Aggregate(records)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(insights)
	})
}

// GetFilterOptions devolve os valores distintos de cada dimensão do lote
// carregado, para popular os seletores de filtro.
func GetFilterOptions(data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options := analyzing.Options(data.Records())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(options)
	})
}

// filterStateFromQuery monta o estado de filtros a partir da query string.
// Cada dimensão aceita a chave repetida ou valores separados por vírgula.
func filterStateFromQuery(query url.Values) domain.FilterState {
	return domain.FilterState{
		Years:    queryValues(query, "years"),
		Months:   queryValues(query, "months"),
		Sellers:  queryValues(query, "sellers"),
		Stores:   queryValues(query, "stores"),
		Cities:   queryValues(query, "cities"),
		Managers: queryValues(query, "managers"),
		Brands:   queryValues(query, "brands"),
		Codes:    queryValues(query, "codes"),
	}
}

func queryValues(query url.Values, key string) []string {
	var out []string
	for _, raw := range query[key] {
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value != "" {
				out = append(out, value)
			}
		}
	}

	return out
}
