// Package normalizer canoniza identificadores de texto livre (nomes de loja)
// para o casamento aproximado entre a planilha de vendas e o mapa de gerentes.
// As duas pontas do join precisam usar exatamente a mesma normalização
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decompõe em NFD, remove as marcas de acentuação e recompõe
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize retorna a chave canônica de um identificador: maiúsculas, sem
// acentos, espaços internos colapsados em um e sem espaços nas bordas.
// Entrada vazia retorna string vazia
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	stripped, _, err := transform.String(stripAccents, raw)
	if err != nil {
		// Entrada com encoding quebrado: segue sem remover acentos
		stripped = raw
	}

	upper := strings.ToUpper(stripped)

	return strings.Join(strings.Fields(upper), " ")
}
