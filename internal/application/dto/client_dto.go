package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	RazonSocial string `json:"razonSocial"`
	RUT         string `json:"rut"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// UpdateClientRequest actualización parcial; nil = sin cambio.
type UpdateClientRequest struct {
	RazonSocial *string `json:"razonSocial"`
	RUT         *string `json:"rut"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// ClientResponse cliente expuesto por la API.
type ClientResponse struct {
	ID          string    `json:"id"`
	RazonSocial string    `json:"razonSocial"`
	RUT         string    `json:"rut"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClientsListResponse listado paginado de clientes.
type ClientsListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
}
