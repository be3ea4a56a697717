package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-indicators-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/pkg/apiErrors"
	"github.com/vfg2006/sales-indicators-api/pkg/log"
)

const (
	exportFilename   = "indicadores_vendas.xlsx"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	attachmentHeader = `attachment; filename="` + exportFilename + `"`
)

// ExportSalesTable gera a planilha de indicadores do lote carregado,
// respeitando os filtros da query string.
func ExportSalesTable(data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := filterStateFromQuery(r.URL.Query())
		records := analyzing.Filter(data.Records(), filters)

		rows := analyzing.BuildTable(records)

		content, err := spreadsheet.WriteIndicators(rows)
		if err != nil {
			logger.WithError(err).Error("export: falha ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao gerar a planilha", nil)
			return
		}

		logger.WithFields(log.Fields{
			"rows":  len(rows),
			"bytes": len(content),
		}).Info("export: planilha de indicadores gerada")

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", attachmentHeader)
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		w.Write(content)
	})
}
