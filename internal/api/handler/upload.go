package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/sales-indicators-api/internal/config"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-indicators-api/pkg/apiErrors"
	"github.com/vfg2006/sales-indicators-api/pkg/log"
)

// UploadSales recebe a planilha de vendas, substitui o lote carregado e
// devolve o identificador do novo lote.
func UploadSales(cfg *config.Config, ingester ingesting.SalesIngester, data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		content, ok := readUploadedFile(w, r, cfg, logger)
		if !ok {
			return
		}

		records, err := ingester.IngestSales(content, data.Lookup())
		if err != nil {
			logger.WithError(err).Warn("upload: falha ao ingerir planilha de vendas")
			writeIngestError(w, err)
			return
		}

		batchID, err := data.Replace(records)
		if err != nil {
			logger.WithError(err).Error("upload: falha ao substituir o lote")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao registrar o lote", nil)
			return
		}

		logger.WithFields(log.Fields{
			"batch_id": batchID,
			"records":  len(records),
		}).Info("upload: lote de vendas carregado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"batch_id": batchID,
			"records":  len(records),
		})
	})
}

// UploadLookup recebe o arquivo de referência de lojas e reconcilia o lote
// já carregado.
func UploadLookup(cfg *config.Config, ingester ingesting.SalesIngester, data *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		content, ok := readUploadedFile(w, r, cfg, logger)
		if !ok {
			return
		}

		lookup, err := ingester.ParseLookup(content)
		if err != nil {
			logger.WithError(err).Warn("upload: falha ao ler tabela de lojas")
			writeIngestError(w, err)
			return
		}

		updated := data.SetLookup(lookup)

		logger.WithFields(log.Fields{
			"stores":  len(lookup),
			"updated": updated,
		}).Info("upload: tabela de lojas carregada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stores":  len(lookup),
			"updated": updated,
		})
	})
}

// readUploadedFile extrai o conteúdo do campo "file" do formulário,
// limitado ao tamanho máximo configurado.
func readUploadedFile(w http.ResponseWriter, r *http.Request, cfg *config.Config, logger log.Logger) ([]byte, bool) {
	maxBytes := cfg.Upload.MaxFileSizeMB << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		logger.WithError(err).Warn("upload: formulário inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "arquivo ausente ou grande demais", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		logger.WithError(err).Warn("upload: campo file ausente")
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campo file é obrigatório", nil)
		return nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.WithError(err).Error("upload: falha ao ler o arquivo")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao ler o arquivo", nil)
		return nil, false
	}

	return content, true
}

// writeIngestError traduz os erros de ingestão para o contrato da API.
func writeIngestError(w http.ResponseWriter, err error) {
	var schemaErr *ingesting.SchemaError
	if errors.As(err, &schemaErr) {
		apiErrors.WriteError(w, apiErrors.ErrSpreadsheetSchema, schemaErr.Error(), nil)
		return
	}

	var parseErr *ingesting.ParseError
	if errors.As(err, &parseErr) {
		apiErrors.WriteError(w, apiErrors.ErrSpreadsheetParse, parseErr.Error(), nil)
		return
	}

	var lookupErr *ingesting.LookupParseError
	if errors.As(err, &lookupErr) {
		apiErrors.WriteError(w, apiErrors.ErrLookupParse, lookupErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
