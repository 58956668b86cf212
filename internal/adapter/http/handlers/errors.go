package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/domain/checklist"
	"repair_desk/internal/domain/ledger"
	"repair_desk/internal/usecase"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// mapRepositoryError covers the repository service routes.
func mapRepositoryError(err error, notFound *pkg.AppError) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return notFound
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Resource already exists", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapSessionError covers the desk routes. The session view, when there is one,
// goes into the details so the desk can redraw the unchanged state.
func mapSessionError(err error, view usecase.SessionView) *pkg.AppError {
	var appErr *pkg.AppError
	var validation *usecase.ValidationError
	var transport *interfaces.TransportError

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Edit session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_FAILED", "Order is not valid", err, http.StatusUnprocessableEntity).WithDetails(validation.Messages)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, checklist.ErrUnknownCheck), errors.Is(err, checklist.ErrUnknownMode):
		appErr = pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		appErr = pkg.NewDomainError("CANDIDATE_NOT_FOUND", "Item is not in the current search results", err, http.StatusNotFound)
	case errors.Is(err, ledger.ErrLineNotFound):
		appErr = pkg.NewDomainError("PARTS_LINE_NOT_FOUND", "Parts line not found", err, http.StatusNotFound)
	case errors.Is(err, ledger.ErrOutOfStock):
		appErr = pkg.NewDomainError("OUT_OF_STOCK", "Item out of stock", err, http.StatusConflict)
	case errors.Is(err, ledger.ErrRemovalNotConfirmed), errors.Is(err, usecase.ErrConfirmationRequired):
		appErr = pkg.NewDomainError("CONFIRMATION_REQUIRED", "Action needs confirmation", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSearchSuperseded):
		return pkg.NewDomainError("SEARCH_SUPERSEDED", "A newer search replaced this one", err, http.StatusConflict)
	case errors.As(err, &transport):
		appErr = pkg.NewDomainError("REPOSITORY_UNAVAILABLE", "Repository service call failed", err, http.StatusBadGateway)
	default:
		appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	if view.ID != "" {
		appErr = appErr.WithDetails(response.FromSession(view))
	}
	return appErr
}
