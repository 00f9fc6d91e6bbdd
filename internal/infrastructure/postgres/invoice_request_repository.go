package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

var _ repository.InvoiceRequestRepository = (*InvoiceRequestRepo)(nil)

// InvoiceRequestRepo implementación de InvoiceRequestRepository.
type InvoiceRequestRepo struct {
	q Querier
}

// NewInvoiceRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRequestRepository(q Querier) *InvoiceRequestRepo {
	return &InvoiceRequestRepo{q: q}
}

// Create persiste una nueva solicitud de facturación.
func (r *InvoiceRequestRepo) Create(request *entity.InvoiceRequest) error {
	query := `
		INSERT INTO invoice_requests (id, solicitante, telefono, correo_contacto, obra,
			descripcion, fecha_solicitud, estado, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Solicitante, request.Telefono, request.CorreoContacto, request.Obra,
		request.Descripcion, request.FechaSolicitud, request.Estado, request.Observaciones,
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud de facturación por ID.
func (r *InvoiceRequestRepo) GetByID(id string) (*entity.InvoiceRequest, error) {
	query := `
		SELECT id, solicitante, telefono, correo_contacto, obra, descripcion,
			fecha_solicitud, estado, observaciones, created_at, updated_at
		FROM invoice_requests WHERE id = $1`
	var req entity.InvoiceRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.Solicitante, &req.Telefono, &req.CorreoContacto, &req.Obra, &req.Descripcion,
		&req.FechaSolicitud, &req.Estado, &req.Observaciones, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice request: %w", err)
	}
	return &req, nil
}

// List lista solicitudes de facturación, filtrables por estado y solicitante.
// Las más recientes primero.
func (r *InvoiceRequestRepo) List(filter repository.InvoiceRequestFilter) ([]*entity.InvoiceRequest, error) {
	query := `
		SELECT id, solicitante, telefono, correo_contacto, obra, descripcion,
			fecha_solicitud, estado, observaciones, created_at, updated_at
		FROM invoice_requests
		WHERE ($1 = '' OR estado = $1) AND ($2 = '' OR solicitante ILIKE '%' || $2 || '%')
		ORDER BY fecha_solicitud DESC`
	rows, err := r.q.Query(context.Background(), query, filter.Estado, filter.Solicitante)
	if err != nil {
		return nil, fmt.Errorf("list invoice requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceRequest
	for rows.Next() {
		var req entity.InvoiceRequest
		if err := rows.Scan(
			&req.ID, &req.Solicitante, &req.Telefono, &req.CorreoContacto, &req.Obra, &req.Descripcion,
			&req.FechaSolicitud, &req.Estado, &req.Observaciones, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// Update actualiza una solicitud de facturación.
func (r *InvoiceRequestRepo) Update(request *entity.InvoiceRequest) error {
	query := `
		UPDATE invoice_requests SET solicitante = $2, telefono = $3, correo_contacto = $4,
			obra = $5, descripcion = $6, estado = $7, observaciones = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Solicitante, request.Telefono, request.CorreoContacto,
		request.Obra, request.Descripcion, request.Estado, request.Observaciones, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice request: %w", err)
	}
	return nil
}

// Delete elimina una solicitud de facturación por ID.
func (r *InvoiceRequestRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice request: %w", err)
	}
	return nil
}
