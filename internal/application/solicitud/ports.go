package solicitud

import (
	"context"

	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción. La aprobación
// escribe la cotización generada y la solicitud en una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		solRepo repository.SolicitudRepository,
		cotRepo repository.CotizacionRepository,
	) error) error
}
