package ingesting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-indicators-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/pkg/normalizer"
)

// Conversão de serial de data de planilha (época 1900): dias desde
// 30/12/1899, com 25569 dias de deslocamento até a época Unix. Contrato
// numérico fixo do formato, não uma aproximação
const (
	excelEpochOffsetDays = 25569
	secondsPerDay        = 86400
)

// Formatos de data aceitos quando a célula vem como texto
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	time.RFC3339,
}

// Service implementa SalesIngester sobre planilhas xlsx
type Service struct{}

// NewService cria o serviço de ingestão
func NewService() SalesIngester {
	return &Service{}
}

// IngestSales lê a primeira aba da planilha de vendas e monta os registros
// normalizados. Falhas de leitura viram ParseError; problemas estruturais
// (menos de duas linhas, colunas obrigatórias ausentes) viram SchemaError.
// Nos dois casos nenhum registro parcial é retornado
func (s *Service) IngestSales(data []byte, lookup map[string]domain.LookupEntry) ([]*domain.SaleRecord, error) {
	rows, err := spreadsheet.ReadRows(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return s.buildRecords(rows, lookup)
}

// ParseLookup lê o arquivo de referência de gerentes. Falha de leitura vira
// LookupParseError; o chamador deve tratá-la como no-op sobre um mapa já
// carregado
func (s *Service) ParseLookup(data []byte) (map[string]domain.LookupEntry, error) {
	rows, err := spreadsheet.ReadRows(data)
	if err != nil {
		return nil, &LookupParseError{Err: err}
	}

	return ParseLookupRows(rows), nil
}

func (s *Service) buildRecords(rows [][]string, lookup map[string]domain.LookupEntry) ([]*domain.SaleRecord, error) {
	if len(rows) < 2 {
		return nil, &SchemaError{Err: ErrTooFewRows}
	}

	resolver := NewHeaderResolver(rows[0])

	idxDate, ok := resolver.Find(FieldDate)
	if !ok {
		return nil, &SchemaError{Err: ErrMissingDateColumn}
	}

	idxAmount, ok := resolver.Find(FieldAmount)
	if !ok {
		return nil, &SchemaError{Err: ErrMissingAmountColumn}
	}

	// Campos opcionais: ausentes viram defaults por linha, nunca erro
	idxSeller := optionalColumn(resolver, FieldSeller)
	idxStore := optionalColumn(resolver, FieldStore)
	idxCity := optionalColumn(resolver, FieldCity)
	idxBrand := optionalColumn(resolver, FieldBrand)
	idxProduct := optionalColumn(resolver, FieldProduct)
	idxCode := optionalColumn(resolver, FieldCode)
	idxQuantity := optionalColumn(resolver, FieldQuantity)
	idxCoupon := optionalColumn(resolver, FieldCoupon)

	dataRows := rows[1:]
	records := make([]*domain.SaleRecord, 0, len(dataRows))
	dropped := 0

	for i, row := range dataRows {
		date, ok := parseCellDate(cellAt(row, idxDate))
		if !ok {
			// Linha com data ilegível sai do conjunto; o resto do arquivo segue
			dropped++
			continue
		}

		store := textOrDefault(cellAt(row, idxStore))
		entry, found := lookup[normalizer.Normalize(store)]

		// Cidade: vale a do mapa de gerentes; senão a da própria planilha;
		// senão o sentinela
		city := textOrDefault(cellAt(row, idxCity))
		manager := domain.NotAvailable
		if found {
			manager = entry.Manager
			if entry.City != "" {
				city = entry.City
			}
		}

		coupon := cellAt(row, idxCoupon)
		if coupon == "" {
			// Sem identificador de cupom, cada linha vira seu próprio cupom
			coupon = fmt.Sprintf("G-%d", i)
		}

		records = append(records, &domain.SaleRecord{
			ID:       fmt.Sprintf("row-%d", i),
			Date:     date,
			Month:    int(date.Month()) - 1,
			Year:     date.Year(),
			Seller:   textOrDefault(cellAt(row, idxSeller)),
			Store:    store,
			City:     city,
			Manager:  manager,
			Brand:    textOrDefault(cellAt(row, idxBrand)),
			Product:  textOrDefault(cellAt(row, idxProduct)),
			Code:     textOrDefault(cellAt(row, idxCode)),
			Coupon:   coupon,
			Amount:   parseNumber(cellAt(row, idxAmount), 0),
			Quantity: parseNumber(cellAt(row, idxQuantity), 1),
		})
	}

	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"dropped": dropped,
	}).Info("Planilha de vendas processada")

	return records, nil
}

func optionalColumn(resolver *HeaderResolver, field Field) int {
	idx, ok := resolver.Find(field)
	if !ok {
		return -1
	}

	return idx
}

func textOrDefault(value string) string {
	if value == "" {
		return domain.NotAvailable
	}

	return value
}

// parseCellDate aceita serial numérico de planilha (época 1900), ou texto em
// um dos formatos conhecidos. Retorna falso quando a célula não é uma data
func parseCellDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, false
		}

		seconds := (serial - excelEpochOffsetDays) * secondsPerDay

		return time.Unix(int64(math.Round(seconds)), 0).UTC(), true
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// parseNumber converte a célula em número, aceitando vírgula decimal
// ("1.234,56" e "1234,56"). Valor ilegível vira o default do campo
func parseNumber(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}

	cleaned := raw
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fallback
	}

	return value
}
