package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemsTableName = "items"
	itemsQuotationIDIndex = "quotation_id-index"
)

type itemItem struct {
	ID               string `dynamodbav:"id"`
	QuotationID      string `dynamodbav:"quotation_id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description,omitempty"`
	Quantity         string `dynamodbav:"quantity"`
	Unit             string `dynamodbav:"unit,omitempty"`
	SizeWeight       string `dynamodbav:"size_weight,omitempty"`
	QuantidadeFontes int    `dynamodbav:"quantidade_fontes"`
	Median           string `dynamodbav:"median,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ItemDynamoRepository persists Item entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
//
// The median attribute is removed, not zeroed, when the item loses its last
// included source; absence is what the evaluation layer reads as "no median".

type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(it))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Item, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var it itemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromItemItem(it))
	}
	return items, nil
}

func (r *ItemDynamoRepository) UpdateAggregates(ctx context.Context, id string, median *float64, sourceCount int) (entities.Item, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #quantidade_fontes = :qf, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":qf":         &types.AttributeValueMemberN{Value: strconv.Itoa(sourceCount)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#quantidade_fontes": "quantidade_fontes",
		"#updated_at":        "updated_at",
		"#median":            "median",
	}
	if median != nil {
		expr += ", #median = :median"
		vals[":median"] = &types.AttributeValueMemberS{Value: floatToString(*median)}
	} else {
		expr += " REMOVE #median"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Item{}, nil
	}
	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toItemItem(it entities.Item) itemItem {
	out := itemItem{
		ID:               it.ID,
		QuotationID:      it.QuotationID,
		Name:             it.Name,
		Description:      it.Description,
		Quantity:         floatToString(it.Quantity),
		Unit:             it.Unit,
		SizeWeight:       it.SizeWeight,
		QuantidadeFontes: it.QuantidadeFontes,
		CreatedAt:        it.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        it.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if it.Median != nil {
		out.Median = floatToString(*it.Median)
	}
	return out
}

func fromItemItem(it itemItem) entities.Item {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	quantity, _ := strconv.ParseFloat(it.Quantity, 64)
	out := entities.Item{
		ID:               it.ID,
		QuotationID:      it.QuotationID,
		Name:             it.Name,
		Description:      it.Description,
		Quantity:         quantity,
		Unit:             it.Unit,
		SizeWeight:       it.SizeWeight,
		QuantidadeFontes: it.QuantidadeFontes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.Median != "" {
		if m, err := strconv.ParseFloat(it.Median, 64); err == nil {
			out.Median = &m
		}
	}
	return out
}
