package ingesting

import (
	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

// SalesIngester define a interface de ingestão dos dois arquivos de entrada
type SalesIngester interface {
	// IngestSales converte os bytes da planilha de vendas em registros
	// normalizados, enriquecidos com o mapa de gerentes quando disponível
	IngestSales(data []byte, lookup map[string]domain.LookupEntry) ([]*domain.SaleRecord, error)

	// ParseLookup converte os bytes do arquivo de referência no mapa
	// loja normalizada → {gerente, cidade}
	ParseLookup(data []byte) (map[string]domain.LookupEntry, error)
}
