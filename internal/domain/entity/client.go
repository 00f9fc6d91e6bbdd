package entity

import "time"

// Client representa un cliente del laboratorio. El RUT es la clave de negocio.
type Client struct {
	ID          string
	RazonSocial string
	RUT         string // único
	Email       string // único
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
