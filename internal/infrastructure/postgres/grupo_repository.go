package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

var _ repository.GrupoRepository = (*GrupoRepo)(nil)

// GrupoRepo implementación de GrupoRepository. La membresía vive en la tabla
// grupo_miembros (grupo_id, user_id).
type GrupoRepo struct {
	q Querier
}

// NewGrupoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGrupoRepository(q Querier) *GrupoRepo {
	return &GrupoRepo{q: q}
}

// Create persiste un nuevo grupo.
func (r *GrupoRepo) Create(grupo *entity.Grupo) error {
	query := `
		INSERT INTO grupos (id, nombre, descripcion, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		grupo.ID, grupo.Nombre, grupo.Descripcion, grupo.Roles, grupo.CreatedAt, grupo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert grupo: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo con sus miembros poblados.
func (r *GrupoRepo) GetByID(id string) (*entity.Grupo, error) {
	query := `
		SELECT id, nombre, descripcion, roles, created_at, updated_at
		FROM grupos WHERE id = $1`
	var g entity.Grupo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Nombre, &g.Descripcion, &g.Roles, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo: %w", err)
	}
	miembros, err := r.listMiembros(g.ID)
	if err != nil {
		return nil, err
	}
	g.Miembros = miembros
	return &g, nil
}

// GetByNombre obtiene un grupo por nombre, sin poblar miembros.
func (r *GrupoRepo) GetByNombre(nombre string) (*entity.Grupo, error) {
	query := `
		SELECT id, nombre, descripcion, roles, created_at, updated_at
		FROM grupos WHERE nombre = $1`
	var g entity.Grupo
	err := r.q.QueryRow(context.Background(), query, nombre).Scan(
		&g.ID, &g.Nombre, &g.Descripcion, &g.Roles, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo by nombre: %w", err)
	}
	return &g, nil
}

// List lista grupos con paginación, filtrando por nombre o descripción.
func (r *GrupoRepo) List(search string, limit, offset int) ([]*entity.Grupo, error) {
	query := `
		SELECT id, nombre, descripcion, roles, created_at, updated_at
		FROM grupos
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR descripcion ILIKE '%' || $1 || '%')
		ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list grupos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Grupo
	for rows.Next() {
		var g entity.Grupo
		if err := rows.Scan(&g.ID, &g.Nombre, &g.Descripcion, &g.Roles, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan grupo: %w", err)
		}
		list = append(list, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, g := range list {
		miembros, err := r.listMiembros(g.ID)
		if err != nil {
			return nil, err
		}
		g.Miembros = miembros
	}
	return list, nil
}

// Count cuenta grupos aplicando el mismo filtro de List.
func (r *GrupoRepo) Count(search string) (int, error) {
	query := `
		SELECT COUNT(*) FROM grupos
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR descripcion ILIKE '%' || $1 || '%')`
	var count int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count grupos: %w", err)
	}
	return count, nil
}

// ListByUser devuelve los grupos a los que pertenece un usuario.
func (r *GrupoRepo) ListByUser(userID string) ([]*entity.Grupo, error) {
	query := `
		SELECT g.id, g.nombre, g.descripcion, g.roles, g.created_at, g.updated_at
		FROM grupos g
		JOIN grupo_miembros gm ON gm.grupo_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.nombre`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list grupos by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Grupo
	for rows.Next() {
		var g entity.Grupo
		if err := rows.Scan(&g.ID, &g.Nombre, &g.Descripcion, &g.Roles, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan grupo: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera del grupo (la membresía va por SetMiembros).
func (r *GrupoRepo) Update(grupo *entity.Grupo) error {
	query := `
		UPDATE grupos SET nombre = $2, descripcion = $3, roles = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		grupo.ID, grupo.Nombre, grupo.Descripcion, grupo.Roles, grupo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update grupo: %w", err)
	}
	return nil
}

// SetMiembros reemplaza la membresía completa del grupo.
func (r *GrupoRepo) SetMiembros(grupoID string, userIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM grupo_miembros WHERE grupo_id = $1`, grupoID); err != nil {
		return fmt.Errorf("clear miembros: %w", err)
	}
	for _, userID := range userIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO grupo_miembros (grupo_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			grupoID, userID,
		); err != nil {
			return fmt.Errorf("insert miembro: %w", err)
		}
	}
	return nil
}

// SetUserGrupos reemplaza los grupos a los que pertenece el usuario.
func (r *GrupoRepo) SetUserGrupos(userID string, grupoIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM grupo_miembros WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user grupos: %w", err)
	}
	for _, grupoID := range grupoIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO grupo_miembros (grupo_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			grupoID, userID,
		); err != nil {
			return fmt.Errorf("insert user grupo: %w", err)
		}
	}
	return nil
}

// AddMiembro agrega un usuario al grupo.
func (r *GrupoRepo) AddMiembro(grupoID, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO grupo_miembros (grupo_id, user_id) VALUES ($1, $2)`,
		grupoID, userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("insert miembro: %w", err)
	}
	return nil
}

// RemoveMiembro quita un usuario del grupo.
func (r *GrupoRepo) RemoveMiembro(grupoID, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM grupo_miembros WHERE grupo_id = $1 AND user_id = $2`,
		grupoID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete miembro: %w", err)
	}
	return nil
}

// Delete elimina el grupo y sus filas de membresía.
func (r *GrupoRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM grupo_miembros WHERE grupo_id = $1`, id); err != nil {
		return fmt.Errorf("delete grupo miembros: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM grupos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete grupo: %w", err)
	}
	return nil
}

func (r *GrupoRepo) listMiembros(grupoID string) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.username, ''), u.email, u.role, u.cargo, u.iniciales
		FROM users u
		JOIN grupo_miembros gm ON gm.user_id = u.id
		WHERE gm.grupo_id = $1
		ORDER BY u.name`
	rows, err := r.q.Query(context.Background(), query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("list miembros: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.Cargo, &u.Iniciales); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
