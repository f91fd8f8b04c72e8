package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
)

// parseID obtiene un parámetro de ruta numérico.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// fail traduce errores de dominio al código HTTP y al sobre de error estándar.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "error interno"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, message = fiber.StatusNotFound, "recurso no encontrado"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, "entrada inválida"
	case errors.Is(err, domain.ErrDuplicate):
		status, message = fiber.StatusConflict, "recurso duplicado"
	case errors.Is(err, domain.ErrConflict):
		status, message = fiber.StatusConflict, "conflicto con el estado actual"
	case domain.IsBusiness(err):
		status, message = fiber.StatusBadRequest, err.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Status: "error", Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: message})
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.OKMessage(message))
}
