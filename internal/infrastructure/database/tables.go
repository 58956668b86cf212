package database

import (
	"context"
	"errors"
	"fmt"

	"repair_desk/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableAPI is the part of *dynamodb.Client needed to provision tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// Tables describes every table the repository service uses, keyed as the
// repositories expect them.
func Tables(cfg config.DynamoDBConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		table(cfg.OrdersTable, key("id", types.ScalarAttributeTypeN)),
		table(cfg.TestsTable, key("order_id", types.ScalarAttributeTypeN), key("mode", types.ScalarAttributeTypeS)),
		table(cfg.PartsTable, key("order_id", types.ScalarAttributeTypeN), key("id", types.ScalarAttributeTypeN)),
		withIndex(table(cfg.PaymentsTable, key("id", types.ScalarAttributeTypeN)), "order_id-index", key("order_id", types.ScalarAttributeTypeN)),
		table(cfg.WarehouseTable, key("id", types.ScalarAttributeTypeN)),
		table(cfg.CountersTable, key("name", types.ScalarAttributeTypeS)),
	}
}

// EnsureTables creates the missing tables. It returns the names it created.
func EnsureTables(ctx context.Context, api TableAPI, cfg config.DynamoDBConfig) ([]string, error) {
	var created []string
	for _, in := range Tables(cfg) {
		name := aws.ToString(in.TableName)
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return created, fmt.Errorf("describe table %s: %w", name, err)
		}
		if _, err := api.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}

type keyAttr struct {
	name string
	typ  types.ScalarAttributeType
}

func key(name string, typ types.ScalarAttributeType) keyAttr {
	return keyAttr{name: name, typ: typ}
}

func table(name string, hash keyAttr, rng ...keyAttr) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(hash.name), AttributeType: hash.typ},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash.name), KeyType: types.KeyTypeHash},
		},
	}
	for _, r := range rng {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{AttributeName: aws.String(r.name), AttributeType: r.typ})
		in.KeySchema = append(in.KeySchema, types.KeySchemaElement{AttributeName: aws.String(r.name), KeyType: types.KeyTypeRange})
	}
	return in
}

func withIndex(in *dynamodb.CreateTableInput, indexName string, hash keyAttr) *dynamodb.CreateTableInput {
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{AttributeName: aws.String(hash.name), AttributeType: hash.typ})
	in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
		IndexName: aws.String(indexName),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash.name), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	})
	return in
}
