package handler

import (
	"net/http"

	"github.com/vfg2006/sales-indicators-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/pkg/log"
)

// GetSalesTable devolve a tabela agregada por dia, loja e vendedor do lote
// carregado, respeitando os filtros da query string.
func GetSalesTable(data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := filterStateFromQuery(r.URL.Query())
		records := analyzing.Filter(data.Records(), filters)

		rows := analyzing.BuildTable(records)

		logger.WithField("rows", len(rows)).Debug("table: tabela agregada montada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	})
}
