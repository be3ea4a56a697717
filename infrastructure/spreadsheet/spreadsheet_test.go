package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func TestReadRows(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Data", "Valor"},
		{45292, 150.5},
	})

	rows, err := ReadRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Data", "Valor"}, rows[0])
	// valores crus: a serial de data não vem formatada
	assert.Equal(t, "45292", rows[1][0])
}

func TestReadRowsInvalidFile(t *testing.T) {
	_, err := ReadRows([]byte("not a spreadsheet"))
	assert.Error(t, err)
}

func TestWriteIndicators(t *testing.T) {
	rows := []domain.TableRow{
		{
			ID:       "2024-01-10|Loja A|Carlos",
			Date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Store:    "Loja A",
			City:     "São Paulo",
			Seller:   "Carlos",
			Manager:  "Ana",
			Product:  "Armação",
			Code:     "SKU-1",
			Amount:   230,
			Quantity: 3,
			Coupons:  "2",
		},
	}

	data, err := WriteIndicators(rows)
	require.NoError(t, err)

	got, err := ReadRows(data)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Data", got[0][0])
	assert.Equal(t, "Ticket Médio", got[0][11])

	assert.Equal(t, "10/01/2024", got[1][0])
	assert.Equal(t, "Loja A", got[1][1])
	assert.Equal(t, "230", got[1][7])
	assert.Equal(t, "3", got[1][8])
	assert.Equal(t, "2", got[1][9])
	assert.Equal(t, "1,50", got[1][10])
	assert.Equal(t, "115,00", got[1][11])
}

func TestWriteIndicatorsCouponFallback(t *testing.T) {
	rows := []domain.TableRow{
		{Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Amount: 100, Quantity: 2, Coupons: "G-0"},
		{Date: time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC), Amount: 50, Quantity: 1, Coupons: ""},
	}

	data, err := WriteIndicators(rows)
	require.NoError(t, err)

	got, err := ReadRows(data)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// não numérico e não vazio conta como um cupom
	assert.Equal(t, "1", got[1][9])
	assert.Equal(t, "100,00", got[1][11])

	// vazio zera cupons e as razões
	assert.Equal(t, "0", got[2][9])
	assert.Equal(t, "0,00", got[2][11])
}

func TestWriteIndicatorsEmpty(t *testing.T) {
	data, err := WriteIndicators(nil)
	require.NoError(t, err)

	got, err := ReadRows(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
