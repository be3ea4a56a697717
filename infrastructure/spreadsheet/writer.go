package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

const indicatorsSheet = "Indicadores"

var indicatorsHeader = []interface{}{
	"Data",
	"Loja",
	"Cidade",
	"Vendedor",
	"Gerente",
	"Produto",
	"Código",
	"Valor Total",
	"Qtd Total",
	"Qtd Cupons",
	"Itens/Cupom",
	"Ticket Médio",
}

// WriteIndicators monta a planilha de indicadores a partir das linhas da
// tabela agregada. Totais saem como números; as razões derivadas saem com
// duas casas e vírgula decimal.
func WriteIndicators(rows []domain.TableRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(indicatorsSheet)
	if err != nil {
		return nil, errors.Wrap(err, "creating sheet")
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(indicatorsSheet, "A1", &indicatorsHeader); err != nil {
		return nil, errors.Wrap(err, "writing header")
	}

	for i, row := range rows {
		coupons := couponCount(row.Coupons)

		itemsPerCoupon := 0.0
		averageTicket := 0.0
		if coupons > 0 {
			itemsPerCoupon = row.Quantity / float64(coupons)
			averageTicket = row.Amount / float64(coupons)
		}

		cells := []interface{}{
			row.Date.Format("02/01/2006"),
			row.Store,
			row.City,
			row.Seller,
			row.Manager,
			row.Product,
			row.Code,
			row.Amount,
			row.Quantity,
			coupons,
			formatDecimalBR(itemsPerCoupon),
			formatDecimalBR(averageTicket),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "resolving cell")
		}

		if err := f.SetSheetRow(indicatorsSheet, cell, &cells); err != nil {
			return nil, errors.Wrapf(err, "writing row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serializing spreadsheet")
	}

	return buf.Bytes(), nil
}

// couponCount interpreta a contagem de cupons da linha. Valores não
// numéricos e não vazios contam como um cupom.
func couponCount(s string) int {
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}

	return n
}

// formatDecimalBR formata com duas casas e vírgula como separador decimal.
func formatDecimalBR(f float64) string {
	return strings.Replace(strconv.FormatFloat(f, 'f', 2, 64), ".", ",", 1)
}
