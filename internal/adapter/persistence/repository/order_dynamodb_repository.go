package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type orderItem struct {
	ID               int64                `dynamodbav:"id"`
	GUID             string               `dynamodbav:"guid"`
	Code             string               `dynamodbav:"code"`
	CompanyID        string               `dynamodbav:"company_id,omitempty"`
	Status           string               `dynamodbav:"status"`
	Customer         entities.CustomerRef `dynamodbav:"customer"`
	Device           entities.DeviceRef   `dynamodbav:"device"`
	PaymentTypeHint  string               `dynamodbav:"payment_type_hint,omitempty"`
	FaultDescription string               `dynamodbav:"fault_description"`
	TechnicianID     int64                `dynamodbav:"technician_id"`
	TechnicianName   string               `dynamodbav:"technician_name,omitempty"`
	EstimatedPrice   float64              `dynamodbav:"estimated_price"`
	LaborAmount      float64              `dynamodbav:"labor_amount"`
	BillingInfo      string               `dynamodbav:"billing_info,omitempty"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists repair orders in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Orders are created elsewhere; this repository reads them and updates the
// fields edited on the desk.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, rc entities.RequestContext, id int64) (entities.RepairOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	if !visible(it.CompanyID, rc) {
		return entities.RepairOrder{}, nil
	}
	return fromOrderItem(it), nil
}

// Put stores a whole order. It backs the local seed data; orders are otherwise
// created outside this service.
func (r *OrderDynamoRepository) Put(ctx context.Context, o entities.RepairOrder) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Update writes the editable core fields. The status is left as it is.
func (r *OrderDynamoRepository) Update(ctx context.Context, rc entities.RequestContext, o entities.RepairOrder) (entities.RepairOrder, error) {
	expr := "SET #fault = :fault, #tech_id = :tech_id, #tech_name = :tech_name, #price = :price, #labor = :labor, " +
		"#billing = :billing, #device.#unlock = :unlock, #device.#accessories = :accessories, #device.#condition = :condition, " +
		"#updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":fault":       stringAttr(o.FaultDescription),
		":tech_id":     numberAttr(o.TechnicianID),
		":tech_name":   stringAttr(o.TechnicianName),
		":price":       floatAttr(o.EstimatedPrice),
		":labor":       floatAttr(o.LaborAmount),
		":billing":     stringAttr(o.BillingInfo),
		":unlock":      stringAttr(o.Device.UnlockCode),
		":accessories": stringAttr(o.Device.Accessories),
		":condition":   stringAttr(o.Device.Condition),
		":updated_at":  stringAttr(now()),
	}
	names := map[string]string{
		"#fault":       "fault_description",
		"#tech_id":     "technician_id",
		"#tech_name":   "technician_name",
		"#price":       "estimated_price",
		"#labor":       "labor_amount",
		"#billing":     "billing_info",
		"#device":      "device",
		"#unlock":      "unlock_code",
		"#accessories": "accessories",
		"#condition":   "condition",
		"#updated_at":  "updated_at",
	}
	return r.update(ctx, rc, o.ID, expr, values, names)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, rc entities.RequestContext, id int64, status entities.OrderStatus) (entities.RepairOrder, error) {
	values := map[string]types.AttributeValue{
		":status":     stringAttr(string(status)),
		":updated_at": stringAttr(now()),
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	return r.update(ctx, rc, id, "SET #status = :status, #updated_at = :updated_at", values, names)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	rc entities.RequestContext,
	id int64,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.RepairOrder, error) {
	names = mergeNames(names, map[string]string{"#id": "id"})
	cond := tenantCondition("attribute_exists(#id)", rc, values, names)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.RepairOrder{}, nil
		}
		return entities.RepairOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RepairOrder{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.RepairOrder) orderItem {
	return orderItem{
		ID:               o.ID,
		GUID:             o.GUID,
		Code:             o.Code,
		CompanyID:        o.CompanyID,
		Status:           string(o.Status),
		Customer:         o.Customer,
		Device:           o.Device,
		PaymentTypeHint:  o.PaymentTypeHint,
		FaultDescription: o.FaultDescription,
		TechnicianID:     o.TechnicianID,
		TechnicianName:   o.TechnicianName,
		EstimatedPrice:   o.EstimatedPrice,
		LaborAmount:      o.LaborAmount,
		BillingInfo:      o.BillingInfo,
		CreatedAt:        o.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:        o.UpdatedAt.UTC().Format(timeLayout),
	}
}

func fromOrderItem(it orderItem) entities.RepairOrder {
	status := entities.OrderStatus(it.Status)
	return entities.RepairOrder{
		ID:               it.ID,
		GUID:             it.GUID,
		Code:             it.Code,
		CompanyID:        it.CompanyID,
		Status:           status,
		StatusLabel:      status.Label(),
		Customer:         it.Customer,
		Device:           it.Device,
		PaymentTypeHint:  it.PaymentTypeHint,
		FaultDescription: it.FaultDescription,
		TechnicianID:     it.TechnicianID,
		TechnicianName:   it.TechnicianName,
		EstimatedPrice:   it.EstimatedPrice,
		LaborAmount:      it.LaborAmount,
		BillingInfo:      it.BillingInfo,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
