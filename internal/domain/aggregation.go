package domain

import (
	"time"
)

// MonthNames são os rótulos usados nas séries mensais e nas opções de filtro
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// SummaryStats são os totais do conjunto filtrado
type SummaryStats struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalQuantity  float64 `json:"total_quantity"`
	TotalCoupons   int     `json:"total_coupons"`
	AverageTicket  float64 `json:"average_ticket"`
	ItemsPerCoupon float64 `json:"items_per_coupon"`
}

// RankingEntry é uma linha de ranking por agrupamento (vendedor, loja,
// marca, produto ou cidade). As cinco métricas ficam sempre disponíveis
// para que a camada de apresentação ordene por qualquer uma delas
type RankingEntry struct {
	Name           string  `json:"name"`
	Revenue        float64 `json:"revenue"`
	Quantity       float64 `json:"quantity"`
	Coupons        int     `json:"coupons"`
	AverageTicket  float64 `json:"average_ticket"`
	ItemsPerCoupon float64 `json:"items_per_coupon"`
}

// MonthPoint é um ponto da série mensal. Meses de anos diferentes caem no
// mesmo balde: é o comportamento documentado da série, não um defeito
type MonthPoint struct {
	Month         int     `json:"month"` // 0-11
	Label         string  `json:"label"`
	Revenue       float64 `json:"revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

// DayPoint é um ponto da série diária de ticket médio
type DayPoint struct {
	Date          time.Time `json:"date"`
	DayOfWeek     int       `json:"day_of_week"` // 0 = domingo ... 6 = sábado
	AverageTicket float64   `json:"average_ticket"`
}

// SalesInsights agrega todas as visões derivadas do conjunto filtrado
type SalesInsights struct {
	Summary   SummaryStats   `json:"summary"`
	ByMonth   []MonthPoint   `json:"by_month"`
	ByDay     []DayPoint     `json:"by_day"`
	BySeller  []RankingEntry `json:"by_seller"`
	ByStore   []RankingEntry `json:"by_store"`
	ByBrand   []RankingEntry `json:"by_brand"`
	ByProduct []RankingEntry `json:"by_product"`
	ByCity    []RankingEntry `json:"by_city"`
}

// TableRow é uma linha da tabela de detalhamento: agrupamento por
// dia × loja × vendedor com os cupons distintos colapsados em contagem
type TableRow struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Store    string    `json:"store"`
	Seller   string    `json:"seller"`
	City     string    `json:"city"`
	Manager  string    `json:"manager"`
	Brand    string    `json:"brand"`
	Product  string    `json:"product"`
	Code     string    `json:"code"`
	Amount   float64   `json:"amount"`
	Quantity float64   `json:"quantity"`
	Coupons  string    `json:"coupons"` // contagem de cupons distintos, como texto
}

// MonthOption é uma opção de mês para os filtros (valor numérico + rótulo)
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions lista os valores distintos disponíveis para cada dimensão
type FilterOptions struct {
	Years    []string      `json:"years"`
	Months   []MonthOption `json:"months"`
	Sellers  []string      `json:"sellers"`
	Stores   []string      `json:"stores"`
	Cities   []string      `json:"cities"`
	Managers []string      `json:"managers"`
	Brands   []string      `json:"brands"`
	Codes    []string      `json:"codes"`
}
