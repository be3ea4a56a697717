package ingesting

import (
	"github.com/pkg/errors"
)

// Erros estruturais da planilha de vendas
var (
	ErrTooFewRows          = errors.New("planilha precisa de um cabeçalho e ao menos uma linha de dados")
	ErrMissingDateColumn   = errors.New("coluna obrigatória 'Data' não encontrada")
	ErrMissingAmountColumn = errors.New("coluna obrigatória 'Valor' não encontrada")
)

// SchemaError indica um problema estrutural no arquivo de vendas (menos de
// duas linhas ou colunas obrigatórias ausentes). A ingestão é abortada e
// nenhum registro parcial é produzido
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ParseError indica falha na leitura dos bytes do arquivo de vendas
// (arquivo corrompido ou formato errado). Mesma garantia: nenhum registro
// parcial é produzido
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LookupParseError indica falha na leitura do arquivo de referência de
// gerentes. Um mapa já carregado anteriormente nunca é descartado por causa
// de uma releitura que falhou
type LookupParseError struct {
	Err error
}

func (e *LookupParseError) Error() string {
	return e.Err.Error()
}

func (e *LookupParseError) Unwrap() error {
	return e.Err
}
