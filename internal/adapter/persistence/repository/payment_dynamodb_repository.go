package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsOrderIDIndex = "order_id-index"
	paymentCounter       = "payments"
)

type paymentItem struct {
	ID          int64   `dynamodbav:"id"`
	OrderID     int64   `dynamodbav:"order_id"`
	CompanyID   string  `dynamodbav:"company_id,omitempty"`
	PartsAmount float64 `dynamodbav:"parts_amount"`
	LaborAmount float64 `dynamodbav:"labor_amount"`
	VATAmount   float64 `dynamodbav:"vat_amount"`
	TotalAmount float64 `dynamodbav:"total_amount"`
	Notes       string  `dynamodbav:"notes,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists the payment record of each order in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: order_id-index (PK: order_id)
//
// VAT and total are always recomputed here from the parts and labor amounts.
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	counter   *Counter
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string, counter *Counter) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName, counter: counter}
}

func (r *PaymentDynamoRepository) GetByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": numberAttr(orderID),
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.PaymentRecord{}, err
		}
		if visible(it.CompanyID, rc) {
			return fromPaymentItem(it), nil
		}
	}
	return entities.PaymentRecord{}, nil
}

// Create stores the first payment of an order. interfaces.ErrConflict when the
// order already has one.
func (r *PaymentDynamoRepository) Create(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	existing, err := r.GetByOrderID(ctx, rc, p.OrderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if existing.Exists() {
		return entities.PaymentRecord{}, interfaces.ErrConflict
	}

	id, err := r.counter.NextID(ctx, paymentCounter)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	ts := now()
	it := toPaymentItem(p)
	it.ID = id
	it.CompanyID = rc.CompanyID
	it.VATAmount, it.TotalAmount = pricing.PaymentTotals(it.PartsAmount, it.LaborAmount)
	it.CreatedAt, it.UpdatedAt = ts, ts

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentRecord{}, interfaces.ErrConflict
		}
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

// Update rewrites the amounts and notes of an existing payment of the same order.
// A missing payment returns a zero value.
func (r *PaymentDynamoRepository) Update(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	parts, labor := pricing.Round2(p.PartsAmount), pricing.Round2(p.LaborAmount)
	vat, total := pricing.PaymentTotals(parts, labor)
	values := map[string]types.AttributeValue{
		":order_id":   numberAttr(p.OrderID),
		":parts":      floatAttr(parts),
		":labor":      floatAttr(labor),
		":vat":        floatAttr(vat),
		":total":      floatAttr(total),
		":notes":      stringAttr(p.Notes),
		":updated_at": stringAttr(now()),
	}
	names := map[string]string{
		"#id":         "id",
		"#order_id":   "order_id",
		"#parts":      "parts_amount",
		"#labor":      "labor_amount",
		"#vat":        "vat_amount",
		"#total":      "total_amount",
		"#notes":      "notes",
		"#updated_at": "updated_at",
	}
	cond := tenantCondition("attribute_exists(#id) AND #order_id = :order_id", rc, values, names)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(p.ID),
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET #parts = :parts, #labor = :labor, #vat = :vat, #total = :total, #notes = :notes, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		PartsAmount: pricing.Round2(p.PartsAmount),
		LaborAmount: pricing.Round2(p.LaborAmount),
		VATAmount:   p.VATAmount,
		TotalAmount: p.TotalAmount,
		Notes:       p.Notes,
	}
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:          it.ID,
		OrderID:     it.OrderID,
		PartsAmount: it.PartsAmount,
		LaborAmount: it.LaborAmount,
		VATAmount:   it.VATAmount,
		TotalAmount: it.TotalAmount,
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
