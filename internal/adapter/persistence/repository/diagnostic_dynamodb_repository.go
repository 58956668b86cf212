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

type diagnosticItem struct {
	OrderID   int64           `dynamodbav:"order_id"`
	Mode      string          `dynamodbav:"mode"`
	CompanyID string          `dynamodbav:"company_id,omitempty"`
	Fields    map[string]bool `dynamodbav:"fields"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

// DiagnosticDynamoRepository stores the incoming and exit test records.
//
// Table requirements:
//   - PK: order_id (number), SK: mode (string)
//
// The field names inside a record are whatever the desk sends for that mode;
// they are not checked here.
type DiagnosticDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDiagnosticRepository = (*DiagnosticDynamoRepository)(nil)

func NewDiagnosticDynamoRepository(ddb DynamoAPI, tableName string) *DiagnosticDynamoRepository {
	return &DiagnosticDynamoRepository{ddb: ddb, tableName: tableName}
}

// Get returns nil when there is no record for the mode.
func (r *DiagnosticDynamoRepository) Get(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode) (map[string]bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": numberAttr(orderID),
			"mode":     stringAttr(string(mode)),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it diagnosticItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if !visible(it.CompanyID, rc) {
		return nil, nil
	}
	if it.Fields == nil {
		it.Fields = map[string]bool{}
	}
	return it.Fields, nil
}

// Put overwrites the whole record of the mode.
func (r *DiagnosticDynamoRepository) Put(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode, fields map[string]bool) error {
	if fields == nil {
		fields = map[string]bool{}
	}
	av, err := attributevalue.MarshalMap(diagnosticItem{
		OrderID:   orderID,
		Mode:      string(mode),
		CompanyID: rc.CompanyID,
		Fields:    fields,
		UpdatedAt: now(),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
