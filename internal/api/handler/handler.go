// Package handler expõe os endpoints HTTP da API de indicadores de vendas.
package handler

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary
