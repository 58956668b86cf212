package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	partsLineCounter   = "order_parts"
	batchWriteLimit    = 25
	batchGetLimit      = 100
	batchWriteAttempts = 5
)

type partsLineItem struct {
	OrderID         int64   `dynamodbav:"order_id"`
	ID              int64   `dynamodbav:"id"`
	CompanyID       string  `dynamodbav:"company_id,omitempty"`
	WarehouseItemID int64   `dynamodbav:"warehouse_item_id"`
	Description     string  `dynamodbav:"description"`
	Quantity        int     `dynamodbav:"quantity"`
	UnitPrice       float64 `dynamodbav:"unit_price"`
	LineTotal       float64 `dynamodbav:"line_total"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// PartsDynamoRepository persists the parts usage lines of orders.
//
// Table requirements:
//   - PK: order_id (number), SK: id (number)
//
// Line ids come from the counters table. Listed lines carry the current stock of
// their warehouse item.
type PartsDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	warehouseTable string
	counter        *Counter
	backoff        time.Duration
}

var _ interfaces.IPartsRepository = (*PartsDynamoRepository)(nil)

func NewPartsDynamoRepository(ddb DynamoAPI, tableName, warehouseTable string, counter *Counter) *PartsDynamoRepository {
	return &PartsDynamoRepository{
		ddb:            ddb,
		tableName:      tableName,
		warehouseTable: warehouseTable,
		counter:        counter,
		backoff:        50 * time.Millisecond,
	}
}

func (r *PartsDynamoRepository) ListByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) ([]entities.PartsLine, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#order_id = :order_id"),
		ExpressionAttributeNames:  map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":order_id": numberAttr(orderID)},
		ConsistentRead:            aws.Bool(true),
	})

	lines := []entities.PartsLine{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it partsLineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if visible(it.CompanyID, rc) {
				lines = append(lines, fromPartsLineItem(it))
			}
		}
	}

	stock, err := r.stockOf(ctx, lines)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].AvailableStock = stock[lines[i].WarehouseItemID]
	}
	sortLines(lines)
	return lines, nil
}

// InsertBatch assigns ids and writes the lines in batches.
func (r *PartsDynamoRepository) InsertBatch(ctx context.Context, rc entities.RequestContext, orderID int64, lines []entities.PartsLine) ([]entities.PartsLine, error) {
	ts := now()
	out := make([]entities.PartsLine, 0, len(lines))
	requests := make([]types.WriteRequest, 0, len(lines))
	for _, line := range lines {
		id, err := r.counter.NextID(ctx, partsLineCounter)
		if err != nil {
			return nil, err
		}
		line.PersistedID = id
		line.LocalID = ""
		line.LineTotal = pricing.LineTotal(line.Quantity, line.UnitPrice)

		it := toPartsLineItem(orderID, rc.CompanyID, line)
		it.CreatedAt, it.UpdatedAt = ts, ts
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return nil, err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		out = append(out, line)
	}

	for _, batch := range chunk(requests, batchWriteLimit) {
		if err := r.writeBatch(ctx, batch); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PartsDynamoRepository) writeBatch(ctx context.Context, batch []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: batch}
	for attempt := 0; attempt < batchWriteAttempts; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt+1)):
		}
	}
	return fmt.Errorf("batch write to %s: unprocessed items left after %d attempts", r.tableName, batchWriteAttempts)
}

// Update changes quantity, price and description of an existing line. A missing
// line returns a zero value.
func (r *PartsDynamoRepository) Update(ctx context.Context, rc entities.RequestContext, orderID int64, line entities.PartsLine) (entities.PartsLine, error) {
	values := map[string]types.AttributeValue{
		":quantity":    numberAttr(int64(line.Quantity)),
		":unit_price":  floatAttr(line.UnitPrice),
		":line_total":  floatAttr(pricing.LineTotal(line.Quantity, line.UnitPrice)),
		":description": stringAttr(line.Description),
		":updated_at":  stringAttr(now()),
	}
	names := map[string]string{
		"#id":          "id",
		"#quantity":    "quantity",
		"#unit_price":  "unit_price",
		"#line_total":  "line_total",
		"#description": "description",
		"#updated_at":  "updated_at",
	}
	cond := tenantCondition("attribute_exists(#id)", rc, values, names)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       partsKey(orderID, line.PersistedID),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET #quantity = :quantity, #unit_price = :unit_price, #line_total = :line_total, #description = :description, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PartsLine{}, nil
		}
		return entities.PartsLine{}, err
	}
	var it partsLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PartsLine{}, err
	}
	return fromPartsLineItem(it), nil
}

// Delete removes one line; interfaces.ErrNotFound when it does not exist.
func (r *PartsDynamoRepository) Delete(ctx context.Context, rc entities.RequestContext, orderID int64, lineID int64) error {
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	cond := tenantCondition("attribute_exists(#id)", rc, values, names)

	in := &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      partsKey(orderID, lineID),
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	if _, err := r.ddb.DeleteItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return interfaces.ErrNotFound
		}
		return err
	}
	return nil
}

// stockOf reads the available stock of the warehouse items used by lines.
func (r *PartsDynamoRepository) stockOf(ctx context.Context, lines []entities.PartsLine) (map[int64]int, error) {
	stock := make(map[int64]int)
	seen := make(map[int64]bool)
	var keys []map[string]types.AttributeValue
	for _, l := range lines {
		if l.WarehouseItemID == 0 || seen[l.WarehouseItemID] {
			continue
		}
		seen[l.WarehouseItemID] = true
		keys = append(keys, map[string]types.AttributeValue{"id": numberAttr(l.WarehouseItemID)})
	}
	if r.warehouseTable == "" {
		return stock, nil
	}

	for _, batch := range chunk(keys, batchGetLimit) {
		pending := map[string]types.KeysAndAttributes{
			r.warehouseTable: {Keys: batch, ProjectionExpression: aws.String("id, available_stock")},
		}
		for len(pending) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.warehouseTable] {
				var it warehouseItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				stock[it.ID] = it.AvailableStock
			}
			pending = out.UnprocessedKeys
		}
	}
	return stock, nil
}

func partsKey(orderID, lineID int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": numberAttr(orderID),
		"id":       numberAttr(lineID),
	}
}

func toPartsLineItem(orderID int64, companyID string, l entities.PartsLine) partsLineItem {
	return partsLineItem{
		OrderID:         orderID,
		ID:              l.PersistedID,
		CompanyID:       companyID,
		WarehouseItemID: l.WarehouseItemID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		LineTotal:       l.LineTotal,
	}
}

func fromPartsLineItem(it partsLineItem) entities.PartsLine {
	return entities.PartsLine{
		PersistedID:     it.ID,
		WarehouseItemID: it.WarehouseItemID,
		Description:     it.Description,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
		LineTotal:       it.LineTotal,
	}
}

// sortLines orders lines by id, which is their insertion order.
func sortLines(lines []entities.PartsLine) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].PersistedID < lines[j].PersistedID })
}
