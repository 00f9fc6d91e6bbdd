package dto

import "github.com/sgal-lab/sgal-api/internal/domain/entity"

// Constructores de respuesta compartidos entre usecases.

// NewClientResponse mapea un Client de dominio.
func NewClientResponse(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:          c.ID,
		RazonSocial: c.RazonSocial,
		RUT:         c.RUT,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewUserResponse mapea un User de dominio con sus grupos.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	grupos := make([]GrupoSummary, 0, len(u.Grupos))
	for _, g := range u.Grupos {
		grupos = append(grupos, GrupoSummary{
			ID:          g.ID,
			Nombre:      g.Nombre,
			Descripcion: g.Descripcion,
			Roles:       g.Roles,
		})
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Cargo:     u.Cargo,
		Iniciales: u.Iniciales,
		Grupos:    grupos,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewGrupoResponse mapea un Grupo de dominio con sus miembros.
func NewGrupoResponse(g *entity.Grupo) *GrupoResponse {
	if g == nil {
		return nil
	}
	miembros := make([]MiembroResponse, 0, len(g.Miembros))
	for _, m := range g.Miembros {
		miembros = append(miembros, MiembroResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Role:      m.Role,
			Cargo:     m.Cargo,
			Iniciales: m.Iniciales,
		})
	}
	return &GrupoResponse{
		ID:          g.ID,
		Nombre:      g.Nombre,
		Descripcion: g.Descripcion,
		Roles:       g.Roles,
		Miembros:    miembros,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// NewSolicitudResponse mapea una Solicitud de dominio.
func NewSolicitudResponse(s *entity.Solicitud) *SolicitudResponse {
	if s == nil {
		return nil
	}
	return &SolicitudResponse{
		ID:                   s.ID,
		Client:               NewClientResponse(s.Client),
		NombreContacto:       s.NombreContacto,
		Telefono:             s.Telefono,
		Email:                s.Email,
		NombreObra:           s.NombreObra,
		UbicacionObra:        s.UbicacionObra,
		DescripcionServicios: s.DescripcionServicios,
		Prioridad:            s.Prioridad,
		Status:               s.Status,
		Observaciones:        s.Observaciones,
		CotizacionGenerada:   s.CotizacionGeneradaID,
		AprobadoPor:          s.AprobadoPorNombre,
		FechaAprobacion:      s.FechaAprobacion,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// NewCotizacionResponse mapea una Cotización de dominio con sus items.
func NewCotizacionResponse(c *entity.Cotizacion) *CotizacionResponse {
	if c == nil {
		return nil
	}
	items := make([]CotizacionItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CotizacionItemResponse{
			Servicio:       it.Servicio,
			Telefono:       it.Telefono,
			NombreContacto: it.NombreContacto,
			Obra:           it.Obra,
		})
	}
	return &CotizacionResponse{
		ID:          c.ID,
		Client:      NewClientResponse(c.Client),
		Items:       items,
		TotalAmount: c.TotalAmount,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewInvoiceRequestResponse mapea una InvoiceRequest de dominio.
func NewInvoiceRequestResponse(r *entity.InvoiceRequest) *InvoiceRequestResponse {
	if r == nil {
		return nil
	}
	return &InvoiceRequestResponse{
		ID:             r.ID,
		Solicitante:    r.Solicitante,
		Telefono:       r.Telefono,
		CorreoContacto: r.CorreoContacto,
		Obra:           r.Obra,
		Descripcion:    r.Descripcion,
		FechaSolicitud: r.FechaSolicitud,
		Estado:         r.Estado,
		Observaciones:  r.Observaciones,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
