package repository

import (
	"context"
	"strings"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type warehouseItem struct {
	ID             int64   `dynamodbav:"id"`
	Code           string  `dynamodbav:"code"`
	CodeLC         string  `dynamodbav:"code_lc"`
	Description    string  `dynamodbav:"description"`
	DescriptionLC  string  `dynamodbav:"description_lc"`
	CompanyID      string  `dynamodbav:"company_id,omitempty"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	AvailableStock int     `dynamodbav:"available_stock"`
}

// WarehouseDynamoRepository searches the stock items.
//
// Table requirements:
//   - PK: id (number)
//   - code_lc and description_lc hold the lowercased code and description
//
// Search is a filtered scan; the warehouse of a single shop is small.
type WarehouseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(ddb DynamoAPI, tableName string) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WarehouseDynamoRepository) Search(ctx context.Context, rc entities.RequestContext, query string, limit int) ([]entities.WarehouseItem, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	items := []entities.WarehouseItem{}
	if q == "" || limit <= 0 {
		return items, nil
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(#desc, :q) OR contains(#code, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#desc": "description_lc",
			"#code": "code_lc",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": stringAttr(q),
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it warehouseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if !visible(it.CompanyID, rc) {
				continue
			}
			items = append(items, fromWarehouseItem(it))
			if len(items) >= limit {
				return items, nil
			}
		}
	}
	return items, nil
}

// Put stores a stock item. Used by the local seed data.
func (r *WarehouseDynamoRepository) Put(ctx context.Context, companyID string, w entities.WarehouseItem) error {
	av, err := attributevalue.MarshalMap(toWarehouseItem(companyID, w))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toWarehouseItem(companyID string, w entities.WarehouseItem) warehouseItem {
	return warehouseItem{
		ID:             w.ID,
		Code:           w.Code,
		CodeLC:         strings.ToLower(w.Code),
		Description:    w.Description,
		DescriptionLC:  strings.ToLower(w.Description),
		CompanyID:      companyID,
		UnitPrice:      w.UnitPrice,
		AvailableStock: w.AvailableStock,
	}
}

func fromWarehouseItem(it warehouseItem) entities.WarehouseItem {
	return entities.WarehouseItem{
		ID:             it.ID,
		Code:           it.Code,
		Description:    it.Description,
		UnitPrice:      it.UnitPrice,
		AvailableStock: it.AvailableStock,
	}
}
