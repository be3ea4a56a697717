package ingesting

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/pkg/normalizer"
)

// headerScanLimit limita a busca do cabeçalho do arquivo de referência às
// primeiras linhas; planilhas reais costumam ter títulos e linhas em branco
// antes da tabela de fato
const headerScanLimit = 20

var (
	lookupStoreHeaders   = []string{"loja", "lojas", "store", "descrição", "descricao"}
	lookupManagerHeaders = []string{"gerente", "manager"}
	lookupCityHeaders    = []string{"cidade", "municipio", "município", "city"}
)

// ParseLookupRows monta o mapa loja normalizada → {gerente, cidade} a partir
// das linhas do arquivo de referência.
//
// O cabeçalho é procurado nas primeiras 20 linhas: a primeira linha que
// tiver colunas reconhecíveis de loja E gerente vira o cabeçalho (cidade é
// opcional). Sem cabeçalho reconhecível, vale o contrato posicional
// {0: loja, 1: gerente, 2: cidade} a partir da linha 1.
//
// Linhas sem loja ou sem gerente são puladas; chaves duplicadas ficam com a
// última ocorrência
func ParseLookupRows(rows [][]string) map[string]domain.LookupEntry {
	entries := make(map[string]domain.LookupEntry)
	if len(rows) == 0 {
		return entries
	}

	headerIdx, storeCol, managerCol, cityCol := findLookupHeader(rows)

	if headerIdx == -1 {
		// Fallback posicional: linha 0 assumida como cabeçalho
		headerIdx, storeCol, managerCol, cityCol = 0, 0, 1, 2
	}

	for _, row := range rows[headerIdx+1:] {
		store := cellAt(row, storeCol)
		manager := cellAt(row, managerCol)

		if store == "" || manager == "" {
			continue
		}

		entries[normalizer.Normalize(store)] = domain.LookupEntry{
			Manager: manager,
			City:    cellAt(row, cityCol),
		}
	}

	logrus.WithField("entries", len(entries)).Debug("Mapa de gerentes carregado")

	return entries
}

// findLookupHeader varre as primeiras linhas procurando um cabeçalho com
// colunas de loja e gerente. Retorna -1 quando nenhuma linha qualifica
func findLookupHeader(rows [][]string) (headerIdx, storeCol, managerCol, cityCol int) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		lowered := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			lowered[j] = strings.ToLower(strings.TrimSpace(cell))
		}

		store := findExact(lowered, lookupStoreHeaders)
		manager := findExact(lowered, lookupManagerHeaders)
		city := findExact(lowered, lookupCityHeaders)

		if store != -1 && manager != -1 {
			return i, store, manager, city
		}
	}

	return -1, -1, -1, -1
}

func findExact(headers []string, terms []string) int {
	for idx, header := range headers {
		for _, term := range terms {
			if header == term {
				return idx
			}
		}
	}

	return -1
}

// cellAt retorna a célula na posição pedida, já sem espaços nas bordas.
// Linhas de planilha podem vir mais curtas que o cabeçalho
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
