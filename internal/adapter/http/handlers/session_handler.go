package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/adapter/http/middleware"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the desk: one edit session per opened order. Actions
// that need a confirmation on the desk read it from the confirm query flag.
type SessionHandler struct {
	usecase usecase.IOrderSessionUseCase
	log     *logger.Logger
}

func NewSessionHandler(uc usecase.IOrderSessionUseCase, log *logger.Logger) *SessionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionHandler{usecase: uc, log: log}
}

func (h *SessionHandler) Open(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.Open(callerContext(c), middleware.FromContext(c), payload.OrderID)
	if err != nil {
		h.log.Warn(h.log.WithOrderID(c.Request.Context(), payload.OrderID), "open order failed", err)
		writeError(c, mapSessionError(err, view))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(view))
}

func (h *SessionHandler) Get(c *gin.Context) {
	view, err := h.usecase.Get(callerContext(c), c.Param("id"))
	h.respond(c, view, err)
}

func (h *SessionHandler) Close(c *gin.Context) {
	if err := h.usecase.Close(callerContext(c), c.Param("id")); err != nil {
		writeError(c, mapSessionError(err, usecase.SessionView{}))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) EditOrder(c *gin.Context) {
	var payload request.SessionOrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.EditOrder(callerContext(c), c.Param("id"), payload.ToEdit())
	h.respond(c, view, err)
}

func (h *SessionHandler) EditLabor(c *gin.Context) {
	var payload request.AmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.EditLabor(callerContext(c), c.Param("id"), float64(payload.Amount))
	h.respond(c, view, err)
}

func (h *SessionHandler) EditFinalPrice(c *gin.Context) {
	var payload request.AmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.EditFinalPrice(callerContext(c), c.Param("id"), float64(payload.Amount))
	h.respond(c, view, err)
}

func (h *SessionHandler) SearchParts(c *gin.Context) {
	items, err := h.usecase.SearchParts(callerContext(c), c.Param("id"), c.Query("q"))
	if err != nil {
		writeError(c, mapSessionError(err, usecase.SessionView{}))
		return
	}
	c.JSON(http.StatusOK, response.FromWarehouseItems(items))
}

func (h *SessionHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.AddPart(callerContext(c), c.Param("id"), payload.WarehouseItemID)
	h.respond(c, view, err)
}

func (h *SessionHandler) SetPartQuantity(c *gin.Context) {
	var payload request.PartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.SetPartQuantity(callerContext(c), c.Param("id"), c.Param("local_id"), payload.Quantity)
	h.respond(c, view, err)
}

func (h *SessionHandler) RemovePart(c *gin.Context) {
	view, err := h.usecase.RemovePart(callerContext(c), c.Param("id"), c.Param("local_id"), confirmFlag(c))
	h.respond(c, view, err)
}

func (h *SessionHandler) ToggleCheck(c *gin.Context) {
	mode := entities.DiagnosticMode(strings.ToLower(c.Param("mode")))
	check := entities.CheckID(strings.ToLower(c.Param("check")))
	view, err := h.usecase.ToggleCheck(callerContext(c), c.Param("id"), mode, check)
	h.respond(c, view, err)
}

// Save answers 200 for a full and for a partial save; the outcome field tells
// them apart.
func (h *SessionHandler) Save(c *gin.Context) {
	report, view, err := h.usecase.Save(callerContext(c), c.Param("id"), confirmFlag(c))
	if err != nil {
		writeError(c, mapSessionError(err, view))
		return
	}
	c.JSON(http.StatusOK, response.FromSave(report, view))
}

func (h *SessionHandler) respond(c *gin.Context, view usecase.SessionView, err error) {
	if err != nil {
		writeError(c, mapSessionError(err, view))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

func confirmFlag(c *gin.Context) usecase.Confirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return usecase.Preconfirmed(ok)
}

// callerContext scopes the use case call to the company of the caller.
func callerContext(c *gin.Context) context.Context {
	return usecase.WithCaller(c.Request.Context(), middleware.FromContext(c))
}
