package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgal-lab/sgal-api/internal/application/solicitud"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

var _ solicitud.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// La aprobación de solicitudes escribe la cotización generada y la solicitud como una unidad.
func (r *TxRunner) Run(ctx context.Context, fn func(
	solRepo repository.SolicitudRepository,
	cotRepo repository.CotizacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	solRepo := NewSolicitudRepository(tx)
	cotRepo := NewCotizacionRepository(tx)

	if err := fn(solRepo, cotRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
