package repository

import "github.com/sgal-lab/sgal-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByRUT(rut string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	// List busca por razón social, RUT o email (ILIKE) cuando search no es vacío.
	List(search string, limit, offset int) ([]*entity.Client, error)
	Count(search string) (int, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
