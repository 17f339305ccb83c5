package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const orderIDLength = 12

// GenerateOrderID gera o id opaco de um pedido manual
func GenerateOrderID() (string, error) {
	return gonanoid.Generate(characters, orderIDLength)
}
