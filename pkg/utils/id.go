package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID cria um identificador curto para lotes de importação.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
