package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/pkg/utils"
)

// accumulator acumula os valores de um grupo em uma única passada; as razões
// (ticket médio, itens por cupom) são sempre derivadas depois, nunca
// armazenadas
type accumulator struct {
	amount   float64
	quantity float64
	coupons  map[string]bool
}

func newAccumulator() *accumulator {
	return &accumulator{coupons: make(map[string]bool)}
}

func (a *accumulator) add(record *domain.SaleRecord) {
	a.amount += record.Amount
	a.quantity += record.Quantity
	a.coupons[record.Coupon] = true
}

// groupSet mantém acumuladores por chave preservando a ordem de primeira
// aparição, para que a saída seja determinística
type groupSet struct {
	byKey map[string]*accumulator
	order []string
}

func newGroupSet() *groupSet {
	return &groupSet{byKey: make(map[string]*accumulator)}
}

func (g *groupSet) add(key string, record *domain.SaleRecord) {
	acc, ok := g.byKey[key]
	if !ok {
		acc = newAccumulator()
		g.byKey[key] = acc
		g.order = append(g.order, key)
	}

	acc.add(record)
}

func (g *groupSet) ranking() []domain.RankingEntry {
	entries := make([]domain.RankingEntry, 0, len(g.order))

	for _, key := range g.order {
		acc := g.byKey[key]
		coupons := len(acc.coupons)

		entries = append(entries, domain.RankingEntry{
			Name:           key,
			Revenue:        acc.amount,
			Quantity:       acc.quantity,
			Coupons:        coupons,
			AverageTicket:  ratio(acc.amount, coupons),
			ItemsPerCoupon: ratio(acc.quantity, coupons),
		})
	}

	return entries
}

// Aggregate deriva todas as visões analíticas do conjunto filtrado: resumo,
// rankings por vendedor/loja/marca/produto/cidade e as séries mensal e
// diária. Função pura; o chamador reexecuta a cada mudança de filtro
func Aggregate(records []*domain.SaleRecord) *domain.SalesInsights {
	summary := newAccumulator()
	byMonth := make(map[int]*accumulator)
	byDay := make(map[string]*accumulator)
	dayDates := make(map[string]time.Time)

	bySeller := newGroupSet()
	byStore := newGroupSet()
	byBrand := newGroupSet()
	byProduct := newGroupSet()
	byCity := newGroupSet()

	for _, record := range records {
		summary.add(record)

		month, ok := byMonth[record.Month]
		if !ok {
			month = newAccumulator()
			byMonth[record.Month] = month
		}
		month.add(record)

		dayKey := record.Date.Format(time.DateOnly)
		day, ok := byDay[dayKey]
		if !ok {
			day = newAccumulator()
			byDay[dayKey] = day
			dayDates[dayKey] = truncateToDay(record.Date)
		}
		day.add(record)

		bySeller.add(record.Seller, record)
		byStore.add(record.Store, record)
		byBrand.add(record.Brand, record)
		byProduct.add(record.Product, record)

		city := record.City
		if city == "" {
			city = domain.NotAvailable
		}
		byCity.add(city, record)
	}

	totalCoupons := len(summary.coupons)

	return &domain.SalesInsights{
		Summary: domain.SummaryStats{
			TotalAmount:    summary.amount,
			TotalQuantity:  summary.quantity,
			TotalCoupons:   totalCoupons,
			AverageTicket:  ratio(summary.amount, totalCoupons),
			ItemsPerCoupon: ratio(summary.quantity, totalCoupons),
		},
		ByMonth:   monthSeries(byMonth),
		ByDay:     daySeries(byDay, dayDates),
		BySeller:  bySeller.ranking(),
		ByStore:   byStore.ranking(),
		ByBrand:   byBrand.ranking(),
		ByProduct: byProduct.ranking(),
		ByCity:    byCity.ranking(),
	}
}

// monthSeries projeta os baldes mensais em ordem crescente de mês. Meses de
// anos diferentes já foram colapsados no mesmo balde pelo agrupamento
func monthSeries(byMonth map[int]*accumulator) []domain.MonthPoint {
	points := make([]domain.MonthPoint, 0, len(byMonth))

	for month, acc := range byMonth {
		points = append(points, domain.MonthPoint{
			Month:         month,
			Label:         domain.MonthNames[month][:3],
			Revenue:       acc.amount,
			AverageTicket: ratio(acc.amount, len(acc.coupons)),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})

	return points
}

func daySeries(byDay map[string]*accumulator, dayDates map[string]time.Time) []domain.DayPoint {
	points := make([]domain.DayPoint, 0, len(byDay))

	for key, acc := range byDay {
		date := dayDates[key]

		points = append(points, domain.DayPoint{
			Date:          date,
			DayOfWeek:     int(date.Weekday()),
			AverageTicket: ratio(acc.amount, len(acc.coupons)),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// ratio divide a soma pela contagem de cupons distintos, com guarda para o
// conjunto vazio (nunca NaN)
func ratio(sum float64, coupons int) float64 {
	if coupons == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(sum / float64(coupons))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
