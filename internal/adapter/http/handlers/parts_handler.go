package handlers

import (
	"net/http"
	"strconv"

	"repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/adapter/http/middleware"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultWarehouseLimit = 20
	maxWarehouseLimit     = 100
)

var errPartsLineNotFound = pkg.NewDomainErrorSimple("PARTS_LINE_NOT_FOUND", "Parts line not found", http.StatusNotFound)

// PartsHandler serves the parts usage and warehouse routes.
type PartsHandler struct {
	parts     interfaces.IPartsRepository
	warehouse interfaces.IWarehouseRepository
	log       *logger.Logger
}

func NewPartsHandler(parts interfaces.IPartsRepository, warehouse interfaces.IWarehouseRepository, log *logger.Logger) *PartsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PartsHandler{parts: parts, warehouse: warehouse, log: log}
}

func (h *PartsHandler) ListParts(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	lines, err := h.parts.ListByOrderID(c.Request.Context(), middleware.FromContext(c), orderID)
	if err != nil {
		writeError(c, mapRepositoryError(err, errOrderNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromPartsLines(lines))
}

func (h *PartsHandler) InsertBatch(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	var payload request.PartsBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	ctx := h.log.WithOrderID(c.Request.Context(), orderID)
	created, err := h.parts.InsertBatch(ctx, middleware.FromContext(c), orderID, payload.ToEntities())
	if err != nil {
		h.log.Error(ctx, "parts batch insert failed", err)
		writeError(c, mapRepositoryError(err, errOrderNotFound))
		return
	}
	c.JSON(http.StatusCreated, response.FromPartsLines(created))
}

func (h *PartsHandler) UpdateLine(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	lineID, ok := parseID(c, "line_id")
	if !ok {
		return
	}
	var payload request.PartsLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	line := payload.ToEntity()
	line.PersistedID = lineID

	ctx := h.log.WithOrderID(c.Request.Context(), orderID)
	saved, err := h.parts.Update(ctx, middleware.FromContext(c), orderID, line)
	if err != nil {
		h.log.Error(ctx, "parts line update failed", err)
		writeError(c, mapRepositoryError(err, errPartsLineNotFound))
		return
	}
	if saved.PersistedID == 0 {
		writeError(c, errPartsLineNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromPartsLine(saved))
}

func (h *PartsHandler) DeleteLine(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	lineID, ok := parseID(c, "line_id")
	if !ok {
		return
	}
	ctx := h.log.WithOrderID(c.Request.Context(), orderID)
	if err := h.parts.Delete(ctx, middleware.FromContext(c), orderID, lineID); err != nil {
		writeError(c, mapRepositoryError(err, errPartsLineNotFound))
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchWarehouse matches q against item codes and descriptions.
func (h *PartsHandler) SearchWarehouse(c *gin.Context) {
	limit := defaultWarehouseLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(c, errInvalidPayload)
			return
		}
		limit = min(n, maxWarehouseLimit)
	}
	items, err := h.warehouse.Search(c.Request.Context(), middleware.FromContext(c), c.Query("q"), limit)
	if err != nil {
		writeError(c, mapRepositoryError(err, errInvalidPayload))
		return
	}
	c.JSON(http.StatusOK, response.FromWarehouseItems(items))
}
