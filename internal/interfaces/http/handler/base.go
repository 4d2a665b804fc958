package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/koperasi/backend/internal/interfaces/http/dto"
	"github.com/koperasi/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// getCooperativeID extracts the cooperative ID placed by the JWT middleware
func getCooperativeID(c *gin.Context) (uuid.UUID, error) {
	idStr := middleware.GetJWTCooperativeID(c)
	if idStr == "" {
		return uuid.Nil, errors.New("cooperative ID not found in context")
	}
	return uuid.Parse(idStr)
}

// getActorID extracts the acting user ID placed by the JWT middleware
func getActorID(c *gin.Context) (uuid.UUID, error) {
	idStr := middleware.GetJWTUserID(c)
	if idStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(idStr)
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message, getRequestID(c)))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// HandleDomainError maps the report error taxonomy to HTTP responses.
// Validation failures return the full violation list so the client can fix
// every problem in one pass.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	if ve, ok := report.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponseWithDetails(
			dto.ErrCodeValidation, ve.Error(), requestID, ve.Violations))
		return
	}

	var authErr *report.AuthorizationError
	if errors.As(err, &authErr) {
		h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, authErr.Error())
		return
	}

	var stateErr *report.StateError
	if errors.As(err, &stateErr) {
		h.Error(c, http.StatusConflict, dto.ErrCodeInvalidState, stateErr.Error())
		return
	}

	if report.IsConflict(err) {
		h.Error(c, http.StatusConflict, dto.ErrCodeConflict, err.Error())
		return
	}

	if errors.Is(err, shared.ErrNotFound) {
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Report not found")
		return
	}

	var depErr *report.DependencyError
	if errors.As(err, &depErr) {
		h.Error(c, http.StatusBadGateway, dto.ErrCodeDependency, "A required dependency is unavailable")
		return
	}

	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}
