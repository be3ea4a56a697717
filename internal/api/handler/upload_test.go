package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-indicators-api/internal/config"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/ingesting/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.Upload{MaxFileSizeMB: 20},
	}
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []*domain.SaleRecord{
		{
			ID:     "row-0",
			Date:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Year:   2024,
			Store:  "Loja A",
			Coupon: "C-1",
			Amount: 100,
		},
	}

	ingester := mocks.NewMockSalesIngester(ctrl)
	ingester.EXPECT().
		IngestSales(gomock.Any(), gomock.Any()).
		Return(records, nil)

	data := dataset.NewStore()

	body, contentType := multipartBody(t, "file", "vendas.xlsx", []byte("conteudo"))

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadSales(testConfig(), ingester, data).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["batch_id"])
	assert.Equal(t, float64(1), resp["records"])

	got := data.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "row-0", got[0].ID)
}

func TestUploadSalesSchemaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingester := mocks.NewMockSalesIngester(ctrl)
	ingester.EXPECT().
		IngestSales(gomock.Any(), gomock.Any()).
		Return(nil, &ingesting.SchemaError{Err: ingesting.ErrMissingDateColumn})

	body, contentType := multipartBody(t, "file", "vendas.xlsx", []byte("conteudo"))

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadSales(testConfig(), ingester, dataset.NewStore()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ING_001", resp["code"])
}

func TestUploadSalesParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingester := mocks.NewMockSalesIngester(ctrl)
	ingester.EXPECT().
		IngestSales(gomock.Any(), gomock.Any()).
		Return(nil, &ingesting.ParseError{Err: assert.AnError})

	body, contentType := multipartBody(t, "file", "vendas.xlsx", []byte("nao e planilha"))

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadSales(testConfig(), ingester, dataset.NewStore()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ING_002", resp["code"])
}

func TestUploadSalesMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingester := mocks.NewMockSalesIngester(ctrl)

	body, contentType := multipartBody(t, "outro_campo", "vendas.xlsx", []byte("conteudo"))

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadSales(testConfig(), ingester, dataset.NewStore()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_002", resp["code"])
}

func TestUploadLookupReconcilesLoadedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookup := map[string]domain.LookupEntry{
		"LOJA A": {Manager: "Ana", City: "São Paulo"},
	}

	ingester := mocks.NewMockSalesIngester(ctrl)
	ingester.EXPECT().
		ParseLookup(gomock.Any()).
		Return(lookup, nil)

	data := dataset.NewStore()
	_, err := data.Replace([]*domain.SaleRecord{
		{
			ID:      "row-0",
			Store:   "Loja A",
			City:    domain.NotAvailable,
			Manager: domain.NotAvailable,
		},
	})
	require.NoError(t, err)

	body, contentType := multipartBody(t, "file", "lojas.xlsx", []byte("conteudo"))

	req := httptest.NewRequest(http.MethodPost, "/v1/lookup/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadLookup(testConfig(), ingester, data).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["stores"])
	assert.Equal(t, float64(1), resp["updated"])

	got := data.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Manager)
	assert.Equal(t, "São Paulo", got[0].City)
}

func TestUploadLookupParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingester := mocks.NewMockSalesIngester(ctrl)
	ingester.EXPECT().
		ParseLookup(gomock.Any()).
		Return(nil, &ingesting.LookupParseError{Err: assert.AnError})

	body, contentType := multipartBody(t, "file", "lojas.xlsx", []byte("nao e planilha"))

	req := httptest.NewRequest(http.MethodPost, "/v1/lookup/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadLookup(testConfig(), ingester, dataset.NewStore()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ING_003", resp["code"])
}
