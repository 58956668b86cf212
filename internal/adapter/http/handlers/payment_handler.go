package handlers

import (
	"net/http"

	"repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/adapter/http/middleware"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// PaymentHandler handles the payment record of an order. VAT and total in the
// responses are computed by the repository.
type PaymentHandler struct {
	payments interfaces.IPaymentRepository
	log      *logger.Logger
}

func NewPaymentHandler(payments interfaces.IPaymentRepository, log *logger.Logger) *PaymentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PaymentHandler{payments: payments, log: log}
}

func (h *PaymentHandler) GetByOrderID(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	p, err := h.payments.GetByOrderID(c.Request.Context(), middleware.FromContext(c), orderID)
	if err != nil {
		writeError(c, mapRepositoryError(err, errPaymentNotFound))
		return
	}
	if !p.Exists() {
		writeError(c, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	ctx := h.log.WithOrderID(c.Request.Context(), payload.OrderID)
	created, err := h.payments.Create(ctx, middleware.FromContext(c), payload.ToEntity(0))
	if err != nil {
		h.log.Error(ctx, "payment create failed", err)
		writeError(c, mapRepositoryError(err, errPaymentNotFound))
		return
	}
	h.log.Info(h.log.WithField(ctx, "payment_id", created.ID), "payment created")
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	ctx := h.log.WithOrderID(c.Request.Context(), payload.OrderID)
	saved, err := h.payments.Update(ctx, middleware.FromContext(c), payload.ToEntity(id))
	if err != nil {
		h.log.Error(ctx, "payment update failed", err)
		writeError(c, mapRepositoryError(err, errPaymentNotFound))
		return
	}
	if !saved.Exists() {
		writeError(c, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(saved))
}
