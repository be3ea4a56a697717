package analyzing

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
)

// tableGroup acumula um grupo dia × loja × vendedor; o primeiro registro do
// grupo fornece os campos descritivos da linha
type tableGroup struct {
	first    *domain.SaleRecord
	amount   float64
	quantity float64
	coupons  map[string]bool
}

// BuildTable agrupa os registros filtrados por dia × loja × vendedor para o
// detalhamento tabular. O campo de cupom da linha recebe a contagem de
// cupons distintos do grupo, como texto. Linhas ordenadas da data mais
// recente para a mais antiga; o id da linha é a própria chave composta
func BuildTable(records []*domain.SaleRecord) []domain.TableRow {
	groups := make(map[string]*tableGroup)
	order := make([]string, 0)

	for _, record := range records {
		key := fmt.Sprintf("%s|%s|%s", record.Date.Format(time.DateOnly), record.Store, record.Seller)

		group, ok := groups[key]
		if !ok {
			group = &tableGroup{first: record, coupons: make(map[string]bool)}
			groups[key] = group
			order = append(order, key)
		}

		group.amount += record.Amount
		group.quantity += record.Quantity
		group.coupons[record.Coupon] = true
	}

	rows := make([]domain.TableRow, 0, len(order))

	for _, key := range order {
		group := groups[key]

		rows = append(rows, domain.TableRow{
			ID:       key,
			Date:     group.first.Date,
			Store:    group.first.Store,
			Seller:   group.first.Seller,
			City:     group.first.City,
			Manager:  group.first.Manager,
			Brand:    group.first.Brand,
			Product:  group.first.Product,
			Code:     group.first.Code,
			Amount:   group.amount,
			Quantity: group.quantity,
			Coupons:  strconv.Itoa(len(group.coupons)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	return rows
}
