package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para exportações de relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// GenerateSecret gera uma chave aleatória para assinatura de tokens
func GenerateSecret(length int) (string, error) {
	return gonanoid.New(length)
}
