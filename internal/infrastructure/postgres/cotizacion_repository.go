package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación de CotizacionRepository. Las líneas de servicio
// viven en la tabla cotizacion_items.
type CotizacionRepo struct {
	q Querier
}

// NewCotizacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

const cotizacionSelect = `
	SELECT co.id, co.client_id, co.total_amount, co.status, co.created_at, co.updated_at,
		c.id, c.razon_social, c.rut, c.email, c.phone, c.address, c.created_at, c.updated_at
	FROM cotizaciones co
	JOIN clients c ON c.id = co.client_id`

func scanCotizacion(row pgx.Row) (*entity.Cotizacion, error) {
	var co entity.Cotizacion
	var c entity.Client
	err := row.Scan(
		&co.ID, &co.ClientID, &co.TotalAmount, &co.Status, &co.CreatedAt, &co.UpdatedAt,
		&c.ID, &c.RazonSocial, &c.RUT, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	co.Client = &c
	return &co, nil
}

// Create persiste la cotización y sus items.
func (r *CotizacionRepo) Create(cotizacion *entity.Cotizacion) error {
	ctx := context.Background()
	query := `
		INSERT INTO cotizaciones (id, client_id, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		cotizacion.ID, cotizacion.ClientID, cotizacion.TotalAmount, cotizacion.Status,
		cotizacion.CreatedAt, cotizacion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return r.insertItems(ctx, cotizacion.ID, cotizacion.Items)
}

// GetByID obtiene una cotización con cliente e items poblados.
func (r *CotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	query := cotizacionSelect + ` WHERE co.id = $1`
	co, err := scanCotizacion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	items, err := r.listItems(co.ID)
	if err != nil {
		return nil, err
	}
	co.Items = items
	return co, nil
}

// List lista cotizaciones con paginación, filtrables por estado y cliente.
// Las más recientes primero.
func (r *CotizacionRepo) List(filter repository.CotizacionFilter, limit, offset int) ([]*entity.Cotizacion, error) {
	query := cotizacionSelect + `
		WHERE ($1 = '' OR co.status = $1) AND ($2 = '' OR co.client_id = $2)
		ORDER BY co.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.Status, filter.ClientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cotizacion
	for rows.Next() {
		co, err := scanCotizacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		list = append(list, co)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, co := range list {
		items, err := r.listItems(co.ID)
		if err != nil {
			return nil, err
		}
		co.Items = items
	}
	return list, nil
}

// Count cuenta cotizaciones aplicando el mismo filtro de List.
func (r *CotizacionRepo) Count(filter repository.CotizacionFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM cotizaciones
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR client_id = $2)`
	var count int
	if err := r.q.QueryRow(context.Background(), query, filter.Status, filter.ClientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cotizaciones: %w", err)
	}
	return count, nil
}

// Update actualiza la cabecera y, si Items no es nil, reemplaza los items.
func (r *CotizacionRepo) Update(cotizacion *entity.Cotizacion) error {
	ctx := context.Background()
	query := `
		UPDATE cotizaciones SET client_id = $2, total_amount = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		cotizacion.ID, cotizacion.ClientID, cotizacion.TotalAmount, cotizacion.Status, cotizacion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cotizacion: %w", err)
	}
	if cotizacion.Items == nil {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM cotizacion_items WHERE cotizacion_id = $1`, cotizacion.ID); err != nil {
		return fmt.Errorf("clear cotizacion items: %w", err)
	}
	return r.insertItems(ctx, cotizacion.ID, cotizacion.Items)
}

// Delete elimina la cotización con sus items.
func (r *CotizacionRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM cotizacion_items WHERE cotizacion_id = $1`, id); err != nil {
		return fmt.Errorf("delete cotizacion items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM cotizaciones WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cotizacion: %w", err)
	}
	return nil
}

// StatsByStatus agrupa conteo y monto total por estado.
func (r *CotizacionRepo) StatsByStatus() ([]repository.CotizacionStatusStat, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM cotizaciones GROUP BY status ORDER BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stats cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []repository.CotizacionStatusStat
	for rows.Next() {
		var st repository.CotizacionStatusStat
		if err := rows.Scan(&st.Status, &st.Count, &st.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan cotizacion stat: %w", err)
		}
		list = append(list, st)
	}
	return list, rows.Err()
}

// CountAll cuenta todas las cotizaciones.
func (r *CotizacionRepo) CountAll() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM cotizaciones`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cotizaciones: %w", err)
	}
	return count, nil
}

func (r *CotizacionRepo) insertItems(ctx context.Context, cotizacionID string, items []entity.CotizacionItem) error {
	for _, it := range items {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := r.q.Exec(ctx,
			`INSERT INTO cotizacion_items (id, cotizacion_id, servicio, telefono, nombre_contacto, obra)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, cotizacionID, it.Servicio, it.Telefono, it.NombreContacto, it.Obra,
		)
		if err != nil {
			return fmt.Errorf("insert cotizacion item: %w", err)
		}
	}
	return nil
}

func (r *CotizacionRepo) listItems(cotizacionID string) ([]entity.CotizacionItem, error) {
	query := `
		SELECT id, servicio, telefono, nombre_contacto, obra
		FROM cotizacion_items WHERE cotizacion_id = $1 ORDER BY servicio`
	rows, err := r.q.Query(context.Background(), query, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("list cotizacion items: %w", err)
	}
	defer rows.Close()
	var items []entity.CotizacionItem
	for rows.Next() {
		var it entity.CotizacionItem
		if err := rows.Scan(&it.ID, &it.Servicio, &it.Telefono, &it.NombreContacto, &it.Obra); err != nil {
			return nil, fmt.Errorf("scan cotizacion item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
