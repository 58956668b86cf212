package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

type OrderRepository struct{ c *Client }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(c *Client) *OrderRepository {
	return &OrderRepository{c: c}
}

func (r *OrderRepository) GetByID(ctx context.Context, rc entities.RequestContext, id int64) (entities.RepairOrder, error) {
	var out response.OrderResponse
	if err := r.c.do(ctx, rc, http.MethodGet, orderPath(id), nil, nil, &out); err != nil {
		if isNotFound(err) {
			return entities.RepairOrder{}, nil
		}
		return entities.RepairOrder{}, err
	}
	return out.ToEntity(), nil
}

func (r *OrderRepository) Update(ctx context.Context, rc entities.RequestContext, o entities.RepairOrder) (entities.RepairOrder, error) {
	var out response.OrderResponse
	if err := r.c.do(ctx, rc, http.MethodPut, orderPath(o.ID), nil, request.FromOrder(o), &out); err != nil {
		return entities.RepairOrder{}, err
	}
	return out.ToEntity(), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, rc entities.RequestContext, id int64, status entities.OrderStatus) (entities.RepairOrder, error) {
	var out response.OrderResponse
	body := request.OrderStatusRequest{Status: string(status)}
	if err := r.c.do(ctx, rc, http.MethodPut, orderPath(id)+"/status", nil, body, &out); err != nil {
		return entities.RepairOrder{}, err
	}
	return out.ToEntity(), nil
}

type DiagnosticRepository struct{ c *Client }

var _ interfaces.IDiagnosticRepository = (*DiagnosticRepository)(nil)

func NewDiagnosticRepository(c *Client) *DiagnosticRepository {
	return &DiagnosticRepository{c: c}
}

// Get returns nil when the order has no record for mode yet.
func (r *DiagnosticRepository) Get(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode) (map[string]bool, error) {
	out := map[string]bool{}
	if err := r.c.do(ctx, rc, http.MethodGet, testPath(orderID, mode), nil, nil, &out); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (r *DiagnosticRepository) Put(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode, fields map[string]bool) error {
	return r.c.do(ctx, rc, http.MethodPut, testPath(orderID, mode), nil, fields, nil)
}

type PartsRepository struct{ c *Client }

var _ interfaces.IPartsRepository = (*PartsRepository)(nil)

func NewPartsRepository(c *Client) *PartsRepository {
	return &PartsRepository{c: c}
}

func (r *PartsRepository) ListByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) ([]entities.PartsLine, error) {
	var out []response.PartsLineResponse
	if err := r.c.do(ctx, rc, http.MethodGet, partsPath(orderID), nil, nil, &out); err != nil {
		return nil, err
	}
	return response.ToPartsLines(out), nil
}

func (r *PartsRepository) InsertBatch(ctx context.Context, rc entities.RequestContext, orderID int64, lines []entities.PartsLine) ([]entities.PartsLine, error) {
	var out []response.PartsLineResponse
	if err := r.c.do(ctx, rc, http.MethodPost, partsPath(orderID)+"/batch", nil, request.FromPartsLines(lines), &out); err != nil {
		return nil, err
	}
	return response.ToPartsLines(out), nil
}

func (r *PartsRepository) Update(ctx context.Context, rc entities.RequestContext, orderID int64, line entities.PartsLine) (entities.PartsLine, error) {
	var out response.PartsLineResponse
	if err := r.c.do(ctx, rc, http.MethodPut, partsLinePath(orderID, line.PersistedID), nil, request.FromPartsLine(line), &out); err != nil {
		return entities.PartsLine{}, err
	}
	return out.ToEntity(), nil
}

func (r *PartsRepository) Delete(ctx context.Context, rc entities.RequestContext, orderID int64, lineID int64) error {
	return r.c.do(ctx, rc, http.MethodDelete, partsLinePath(orderID, lineID), nil, nil, nil)
}

type PaymentRepository struct{ c *Client }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{c: c}
}

// GetByOrderID treats 404 as "no payment yet".
func (r *PaymentRepository) GetByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) (entities.PaymentRecord, error) {
	var out response.PaymentResponse
	if err := r.c.do(ctx, rc, http.MethodGet, "payments/order/"+strconv.FormatInt(orderID, 10), nil, nil, &out); err != nil {
		if isNotFound(err) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	return out.ToEntity(), nil
}

func (r *PaymentRepository) Create(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	var out response.PaymentResponse
	if err := r.c.do(ctx, rc, http.MethodPost, "payments", nil, request.FromPayment(p), &out); err != nil {
		return entities.PaymentRecord{}, err
	}
	return out.ToEntity(), nil
}

func (r *PaymentRepository) Update(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	var out response.PaymentResponse
	if err := r.c.do(ctx, rc, http.MethodPut, "payments/"+strconv.FormatInt(p.ID, 10), nil, request.FromPayment(p), &out); err != nil {
		return entities.PaymentRecord{}, err
	}
	return out.ToEntity(), nil
}

type WarehouseRepository struct{ c *Client }

var _ interfaces.IWarehouseRepository = (*WarehouseRepository)(nil)

func NewWarehouseRepository(c *Client) *WarehouseRepository {
	return &WarehouseRepository{c: c}
}

func (r *WarehouseRepository) Search(ctx context.Context, rc entities.RequestContext, query string, limit int) ([]entities.WarehouseItem, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []response.WarehouseItemResponse
	if err := r.c.do(ctx, rc, http.MethodGet, "warehouse/items", q, nil, &out); err != nil {
		return nil, err
	}
	return response.ToWarehouseItems(out), nil
}

func orderPath(id int64) string {
	return "order/" + strconv.FormatInt(id, 10)
}

func testPath(orderID int64, mode entities.DiagnosticMode) string {
	return fmt.Sprintf("order/%d/%s-test", orderID, mode)
}

func partsPath(orderID int64) string {
	return "parts/" + strconv.FormatInt(orderID, 10)
}

func partsLinePath(orderID, lineID int64) string {
	return fmt.Sprintf("parts/%d/parts/%d", orderID, lineID)
}
