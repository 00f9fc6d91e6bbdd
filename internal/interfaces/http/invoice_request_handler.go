package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// InvoiceRequestHandler maneja las peticiones HTTP de solicitudes de facturación.
type InvoiceRequestHandler struct {
	uc *usecase.InvoiceRequestUseCase
}

// NewInvoiceRequestHandler construye el handler.
func NewInvoiceRequestHandler(uc *usecase.InvoiceRequestUseCase) *InvoiceRequestHandler {
	return &InvoiceRequestHandler{uc: uc}
}

// Create POST /api/invoice-requests
func (h *InvoiceRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solicitante, telefono, correoContacto, obra y descripcion son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// List GET /api/invoice-requests?estado=pendiente&solicitante=juan
// También sirve el listado público GET /api/invoice-requests/public, sin sesión.
func (h *InvoiceRequestHandler) List(c *fiber.Ctx) error {
	filter := repository.InvoiceRequestFilter{
		Estado:      c.Query("estado"),
		Solicitante: c.Query("solicitante"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID GET /api/invoice-requests/:id
func (h *InvoiceRequestHandler) GetByID(c *fiber.Ctx) error {
	req, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_REQUEST_NOT_FOUND", Message: "la solicitud de facturación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(req)
}

// Update PUT /api/invoice-requests/:id
func (h *InvoiceRequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_REQUEST_NOT_FOUND", Message: "la solicitud de facturación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(req)
}

// UpdateEstado PATCH /api/invoice-requests/:id/status
func (h *InvoiceRequestHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.InvoiceRequestEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.uc.UpdateEstado(c.Params("id"), in.Estado)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido: use pendiente, aprobado o rechazado"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_REQUEST_NOT_FOUND", Message: "la solicitud de facturación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(req)
}

// Delete DELETE /api/invoice-requests/:id (admin)
func (h *InvoiceRequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_REQUEST_NOT_FOUND", Message: "la solicitud de facturación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Solicitud de facturación eliminada exitosamente"})
}
