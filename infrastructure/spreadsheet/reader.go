// Package spreadsheet encapsula a leitura e escrita de arquivos xlsx.
package spreadsheet

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadRows abre o arquivo em memória e devolve as linhas da primeira
// planilha. Os valores vêm crus, sem a formatação de célula, para que
// datas seriais cheguem ao parser como números.
func ReadRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "opening spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", sheets[0])
	}

	return rows, nil
}
