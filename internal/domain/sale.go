package domain

import (
	"time"
)

// NotAvailable é o valor sentinela usado quando a planilha não traz o campo
const NotAvailable = "N/A"

// SaleRecord representa uma linha de venda já normalizada da planilha
type SaleRecord struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Month    int       `json:"month"` // 0 = janeiro ... 11 = dezembro
	Year     int       `json:"year"`
	Seller   string    `json:"seller"`
	Store    string    `json:"store"`
	City     string    `json:"city"`
	Manager  string    `json:"manager"`
	Brand    string    `json:"brand"`
	Product  string    `json:"product"`
	Code     string    `json:"code"`
	Coupon   string    `json:"coupon"`
	Amount   float64   `json:"amount"`
	Quantity float64   `json:"quantity"`
}

// LookupEntry é o valor do mapa loja → {gerente, cidade} carregado do
// arquivo de referência. A chave do mapa é sempre o nome da loja normalizado
type LookupEntry struct {
	Manager string `json:"manager"`
	City    string `json:"city"`
}

// FilterState guarda os valores selecionados em cada dimensão de filtro.
// Dimensão vazia não restringe nada; dimensões se combinam por E lógico e,
// dentro de uma dimensão, os valores por OU
type FilterState struct {
	Years    []string `json:"years"`
	Months   []string `json:"months"`
	Sellers  []string `json:"sellers"`
	Stores   []string `json:"stores"`
	Cities   []string `json:"cities"`
	Managers []string `json:"managers"`
	Brands   []string `json:"brands"`
	Codes    []string `json:"codes"`
}

// IsEmpty retorna verdadeiro quando nenhuma dimensão tem seleção
func (f FilterState) IsEmpty() bool {
	return len(f.Years) == 0 &&
		len(f.Months) == 0 &&
		len(f.Sellers) == 0 &&
		len(f.Stores) == 0 &&
		len(f.Cities) == 0 &&
		len(f.Managers) == 0 &&
		len(f.Brands) == 0 &&
		len(f.Codes) == 0
}
