package ingesting

import (
	"strings"
)

// Field identifica uma coluna lógica da planilha de vendas,
// independentemente de como o sistema exportador a nomeou
type Field string

const (
	FieldDate     Field = "date"
	FieldSeller   Field = "seller"
	FieldStore    Field = "store"
	FieldCity     Field = "city"
	FieldBrand    Field = "brand"
	FieldProduct  Field = "product"
	FieldCode     Field = "code"
	FieldAmount   Field = "amount"
	FieldQuantity Field = "quantity"
	FieldCoupon   Field = "coupon"
)

type matchKind int

const (
	matchExact matchKind = iota
	matchContains
)

// headerRule é uma regra de casamento de cabeçalho. As regras de um campo
// são tentadas na ordem declarada, da mais específica para a mais genérica;
// a primeira que casar com alguma coluna vence e não é reavaliada
type headerRule struct {
	kind    matchKind
	terms   []string
	exclude []string // fragmentos que desclassificam a coluna (só para matchContains)
}

// As planilhas exportadas usam "descrição"/"descrição2"/"descrição3" como
// colunas posicionais para loja, vendedor e produto. Os apelidos exatos vêm
// antes dos fragmentos genéricos justamente para desambiguar esses casos
var headerRules = map[Field][]headerRule{
	FieldDate: {
		{kind: matchContains, terms: []string{"data", "date"}},
	},
	FieldSeller: {
		{kind: matchExact, terms: []string{"descrição2", "descricao2"}},
		{kind: matchContains, terms: []string{"descrição2", "descricao2"}},
		{kind: matchContains, terms: []string{"vendedor", "salesperson"}},
	},
	FieldStore: {
		{kind: matchExact, terms: []string{"descrição", "descricao"}},
		{kind: matchContains, terms: []string{"descrição", "descricao"}, exclude: []string{"2", "3"}},
		{kind: matchContains, terms: []string{"loja", "store"}},
	},
	FieldCity: {
		{kind: matchExact, terms: []string{"cidade", "city", "municipio", "município"}},
		{kind: matchContains, terms: []string{"cidade", "municipio"}},
	},
	FieldBrand: {
		{kind: matchExact, terms: []string{"marca", "brand"}},
		{kind: matchContains, terms: []string{"marca", "fabricante"}},
	},
	FieldProduct: {
		{kind: matchExact, terms: []string{"descrição3", "descricao3"}},
		{kind: matchContains, terms: []string{"descrição3", "descricao3"}},
		{kind: matchContains, terms: []string{"produto", "product"}},
	},
	FieldCode: {
		{kind: matchExact, terms: []string{"item"}},
		{kind: matchExact, terms: []string{"código", "codigo", "code", "sku"}},
	},
	FieldAmount: {
		{kind: matchContains, terms: []string{"valor", "total", "amount"}},
	},
	FieldQuantity: {
		{kind: matchContains, terms: []string{"qtd", "quant", "qty"}},
	},
	FieldCoupon: {
		{kind: matchExact, terms: []string{"cupom", "ticket", "pedido"}},
		{kind: matchContains, terms: []string{"cupom", "ticket", "pedido"}},
		{kind: matchContains, terms: []string{"documento", "nota"}},
	},
}

// HeaderResolver mapeia a linha de cabeçalho de uma planilha para os campos
// lógicos via regras heurísticas ordenadas
type HeaderResolver struct {
	headers []string
}

// NewHeaderResolver prepara o resolvedor a partir da linha de cabeçalho
// crua. Os títulos são comparados em minúsculas e sem espaços nas bordas
func NewHeaderResolver(raw []string) *HeaderResolver {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return &HeaderResolver{headers: headers}
}

// Find retorna o índice da coluna que corresponde ao campo lógico, ou falso
// quando nenhuma regra casou
func (r *HeaderResolver) Find(field Field) (int, bool) {
	for _, rule := range headerRules[field] {
		if idx := r.apply(rule); idx >= 0 {
			return idx, true
		}
	}

	return 0, false
}

func (r *HeaderResolver) apply(rule headerRule) int {
	for idx, header := range r.headers {
		if r.matches(rule, header) {
			return idx
		}
	}

	return -1
}

func (r *HeaderResolver) matches(rule headerRule, header string) bool {
	switch rule.kind {
	case matchExact:
		for _, term := range rule.terms {
			if header == term {
				return true
			}
		}
	case matchContains:
		for _, excluded := range rule.exclude {
			if strings.Contains(header, excluded) {
				return false
			}
		}

		for _, term := range rule.terms {
			if strings.Contains(header, term) {
				return true
			}
		}
	}

	return false
}
