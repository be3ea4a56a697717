package handler

import (
	"net/http"

	"github.com/vfg2006/sales-indicators-api/internal/api/handler/router"
	"github.com/vfg2006/sales-indicators-api/internal/config"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-indicators-api/internal/usecases/ingesting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(cfg *config.Config, ingester ingesting.SalesIngester, data *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/upload",
			Method:  http.MethodPost,
			Handler: UploadSales(cfg, ingester, data),
		},
		{
			Path:    "/v1/sales/table",
			Method:  http.MethodGet,
			Handler: GetSalesTable(data),
		},
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSalesTable(data),
		},
	}
}

func Lookup(cfg *config.Config, ingester ingesting.SalesIngester, data *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/lookup/upload",
			Method:  http.MethodPost,
			Handler: UploadLookup(cfg, ingester, data),
		},
	}
}

func Insights(data *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(data),
		},
		{
			Path:    "/v1/insights/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(data),
		},
	}
}
