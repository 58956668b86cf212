package handlers

import (
	"net/http"

	"repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/adapter/http/middleware"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errOrderNotFound = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)

// OrderHandler serves the order and diagnostic routes of the repository service.
type OrderHandler struct {
	orders      interfaces.IOrderRepository
	diagnostics interfaces.IDiagnosticRepository
	log         *logger.Logger
}

func NewOrderHandler(orders interfaces.IOrderRepository, diagnostics interfaces.IDiagnosticRepository, log *logger.Logger) *OrderHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderHandler{orders: orders, diagnostics: diagnostics, log: log}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.GetByID(c.Request.Context(), middleware.FromContext(c), id)
	if err != nil {
		writeError(c, mapRepositoryError(err, errOrderNotFound))
		return
	}
	if o.ID == 0 {
		writeError(c, errOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateOrder writes the core fields. The status is ignored here.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	ctx := h.log.WithOrderID(c.Request.Context(), id)
	saved, err := h.orders.Update(ctx, middleware.FromContext(c), payload.ToEntity(id))
	if err != nil {
		h.log.Error(ctx, "order update failed", err)
		writeError(c, mapRepositoryError(err, errOrderNotFound))
		return
	}
	if saved.ID == 0 {
		writeError(c, errOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(saved))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	status := payload.ResolveStatus()
	if !status.IsValid() {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid order status", http.StatusBadRequest))
		return
	}

	ctx := h.log.WithOrderID(c.Request.Context(), id)
	saved, err := h.orders.UpdateStatus(ctx, middleware.FromContext(c), id, status)
	if err != nil {
		h.log.Error(ctx, "order status update failed", err)
		writeError(c, mapRepositoryError(err, errOrderNotFound))
		return
	}
	if saved.ID == 0 {
		writeError(c, errOrderNotFound)
		return
	}
	h.log.Info(h.log.WithField(ctx, "status", string(status)), "order status changed")
	c.JSON(http.StatusOK, response.FromOrder(saved))
}

// GetTest returns the flat record of one diagnostic mode.
func (h *OrderHandler) GetTest(mode entities.DiagnosticMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		fields, err := h.diagnostics.Get(c.Request.Context(), middleware.FromContext(c), id, mode)
		if err != nil {
			writeError(c, mapRepositoryError(err, errOrderNotFound))
			return
		}
		if fields == nil {
			writeError(c, pkg.NewDomainErrorSimple("TEST_NOT_FOUND", "Diagnostic record not found", http.StatusNotFound))
			return
		}
		c.JSON(http.StatusOK, fields)
	}
}

// PutTest overwrites the record of one diagnostic mode.
func (h *OrderHandler) PutTest(mode entities.DiagnosticMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var fields map[string]bool
		if err := c.ShouldBindJSON(&fields); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
		ctx := h.log.WithOrderID(c.Request.Context(), id)
		if err := h.diagnostics.Put(ctx, middleware.FromContext(c), id, mode, fields); err != nil {
			h.log.Error(ctx, "diagnostic record write failed", err)
			writeError(c, mapRepositoryError(err, errOrderNotFound))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
