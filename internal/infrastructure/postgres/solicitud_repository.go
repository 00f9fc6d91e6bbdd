package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación de SolicitudRepository (usable con pool o tx).
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

// Columnas de solicitud junto al cliente y el nombre del aprobador.
const solicitudSelect = `
	SELECT s.id, s.client_id, s.nombre_contacto, s.telefono, s.email,
		s.nombre_obra, s.ubicacion_obra, s.descripcion_servicios,
		s.prioridad, s.status, s.observaciones,
		COALESCE(s.cotizacion_generada_id, ''), COALESCE(s.aprobado_por_id, ''),
		COALESCE(u.name, ''), s.fecha_aprobacion, s.created_at, s.updated_at,
		c.id, c.razon_social, c.rut, c.email, c.phone, c.address, c.created_at, c.updated_at
	FROM solicitudes s
	JOIN clients c ON c.id = s.client_id
	LEFT JOIN users u ON u.id = s.aprobado_por_id`

func scanSolicitud(row pgx.Row) (*entity.Solicitud, error) {
	var s entity.Solicitud
	var c entity.Client
	err := row.Scan(
		&s.ID, &s.ClientID, &s.NombreContacto, &s.Telefono, &s.Email,
		&s.NombreObra, &s.UbicacionObra, &s.DescripcionServicios,
		&s.Prioridad, &s.Status, &s.Observaciones,
		&s.CotizacionGeneradaID, &s.AprobadoPorID,
		&s.AprobadoPorNombre, &s.FechaAprobacion, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.RazonSocial, &c.RUT, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Client = &c
	return &s, nil
}

// Create persiste una nueva solicitud.
func (r *SolicitudRepo) Create(solicitud *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (id, client_id, nombre_contacto, telefono, email,
			nombre_obra, ubicacion_obra, descripcion_servicios, prioridad, status,
			observaciones, cotizacion_generada_id, aprobado_por_id, fecha_aprobacion,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		solicitud.ID, solicitud.ClientID, solicitud.NombreContacto, solicitud.Telefono, solicitud.Email,
		solicitud.NombreObra, solicitud.UbicacionObra, solicitud.DescripcionServicios,
		solicitud.Prioridad, solicitud.Status, solicitud.Observaciones,
		nullIfEmpty(solicitud.CotizacionGeneradaID), nullIfEmpty(solicitud.AprobadoPorID),
		solicitud.FechaAprobacion, solicitud.CreatedAt, solicitud.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud con cliente y aprobador poblados.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	query := solicitudSelect + ` WHERE s.id = $1`
	s, err := scanSolicitud(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return s, nil
}

// List lista solicitudes con paginación, filtrables por estado y cliente.
// Las más recientes primero.
func (r *SolicitudRepo) List(filter repository.SolicitudFilter, limit, offset int) ([]*entity.Solicitud, error) {
	query := solicitudSelect + `
		WHERE ($1 = '' OR s.status = $1) AND ($2 = '' OR s.client_id = $2)
		ORDER BY s.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.Status, filter.ClientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Solicitud
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count cuenta solicitudes aplicando el mismo filtro de List.
func (r *SolicitudRepo) Count(filter repository.SolicitudFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM solicitudes
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR client_id = $2)`
	var count int
	if err := r.q.QueryRow(context.Background(), query, filter.Status, filter.ClientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count solicitudes: %w", err)
	}
	return count, nil
}

// Update actualiza una solicitud (estado, aprobador y cotización generada incluidos).
func (r *SolicitudRepo) Update(solicitud *entity.Solicitud) error {
	query := `
		UPDATE solicitudes SET nombre_contacto = $2, telefono = $3, email = $4,
			nombre_obra = $5, ubicacion_obra = $6, descripcion_servicios = $7,
			prioridad = $8, status = $9, observaciones = $10,
			cotizacion_generada_id = $11, aprobado_por_id = $12, fecha_aprobacion = $13,
			updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		solicitud.ID, solicitud.NombreContacto, solicitud.Telefono, solicitud.Email,
		solicitud.NombreObra, solicitud.UbicacionObra, solicitud.DescripcionServicios,
		solicitud.Prioridad, solicitud.Status, solicitud.Observaciones,
		nullIfEmpty(solicitud.CotizacionGeneradaID), nullIfEmpty(solicitud.AprobadoPorID),
		solicitud.FechaAprobacion, solicitud.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update solicitud: %w", err)
	}
	return nil
}

// CountByStatus agrupa las solicitudes por estado.
func (r *SolicitudRepo) CountByStatus() ([]repository.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM solicitudes GROUP BY status ORDER BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count solicitudes by status: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

// CountAll cuenta todas las solicitudes.
func (r *SolicitudRepo) CountAll() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM solicitudes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count solicitudes: %w", err)
	}
	return count, nil
}
