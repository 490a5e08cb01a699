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
	defaultPriceSourcesTableName = "price_sources"
	priceSourcesItemIDIndex      = "item_id-index"
)

type priceSourceItem struct {
	ID                     string `dynamodbav:"id"`
	ItemID                 string `dynamodbav:"item_id"`
	UnitValue              string `dynamodbav:"unit_value"`
	Origin                 string `dynamodbav:"origin"`
	Description            string `dynamodbav:"description,omitempty"`
	EntityName             string `dynamodbav:"entity_name,omitempty"`
	Municipality           string `dynamodbav:"municipality,omitempty"`
	UF                     string `dynamodbav:"uf,omitempty"`
	ReferenceDate          string `dynamodbav:"reference_date,omitempty"`
	IncludedInCalculation  bool   `dynamodbav:"included_in_calculation"`
	ExclusionJustification string `dynamodbav:"exclusion_justification,omitempty"`
	ExternalRecordID       string `dynamodbav:"external_record_id,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
}

// PriceSourceDynamoRepository persists PriceSource entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: item_id-index (PK: item_id)

type PriceSourceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceSourceRepository = (*PriceSourceDynamoRepository)(nil)

func NewPriceSourceDynamoRepository(ddb *dynamodb.Client) *PriceSourceDynamoRepository {
	return &PriceSourceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_SOURCES_TABLE", defaultPriceSourcesTableName),
	}
}

func (r *PriceSourceDynamoRepository) Create(ctx context.Context, s entities.PriceSource) (entities.PriceSource, error) {
	av, err := attributevalue.MarshalMap(toPriceSourceItem(s))
	if err != nil {
		return entities.PriceSource{}, err
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
		return entities.PriceSource{}, err
	}
	return s, nil
}

func (r *PriceSourceDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceSource, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceSource{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceSource{}, nil
	}

	var it priceSourceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceSource{}, err
	}
	return fromPriceSourceItem(it), nil
}

func (r *PriceSourceDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.PriceSource, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(priceSourcesItemIDIndex),
		KeyConditionExpression: aws.String("item_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return nil, err
	}

	sources := make([]entities.PriceSource, 0, len(out.Items))
	for _, raw := range out.Items {
		var it priceSourceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sources = append(sources, fromPriceSourceItem(it))
	}
	return sources, nil
}

// SetInclusion persists the flag and the justification together. The
// justification is written as-is; re-inclusion hands back the stored one so
// the audit trail survives the flip.
func (r *PriceSourceDynamoRepository) SetInclusion(ctx context.Context, id string, included bool, justification string) (entities.PriceSource, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #included = :included, #justification = :justification"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":included":      &types.AttributeValueMemberBOOL{Value: included},
			":justification": &types.AttributeValueMemberS{Value: justification},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#included":      "included_in_calculation",
			"#justification": "exclusion_justification",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PriceSource{}, nil
		}
		return entities.PriceSource{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PriceSource{}, nil
	}
	var it priceSourceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PriceSource{}, err
	}
	return fromPriceSourceItem(it), nil
}

func (r *PriceSourceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPriceSourceItem(s entities.PriceSource) priceSourceItem {
	it := priceSourceItem{
		ID:                     s.ID,
		ItemID:                 s.ItemID,
		UnitValue:              floatToString(s.UnitValue),
		Origin:                 string(s.Origin),
		Description:            s.Description,
		EntityName:             s.EntityName,
		Municipality:           s.Municipality,
		UF:                     s.UF,
		IncludedInCalculation:  s.IncludedInCalculation,
		ExclusionJustification: s.ExclusionJustification,
		ExternalRecordID:       s.ExternalRecordID,
		CreatedAt:              s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.ReferenceDate.IsZero() {
		it.ReferenceDate = s.ReferenceDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPriceSourceItem(it priceSourceItem) entities.PriceSource {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	referenceDate, _ := time.Parse(time.RFC3339Nano, it.ReferenceDate)
	unitValue, _ := strconv.ParseFloat(it.UnitValue, 64)
	return entities.PriceSource{
		ID:                     it.ID,
		ItemID:                 it.ItemID,
		UnitValue:              unitValue,
		Origin:                 entities.SourceOrigin(it.Origin),
		Description:            it.Description,
		EntityName:             it.EntityName,
		Municipality:           it.Municipality,
		UF:                     it.UF,
		ReferenceDate:          referenceDate,
		IncludedInCalculation:  it.IncludedInCalculation,
		ExclusionJustification: it.ExclusionJustification,
		ExternalRecordID:       it.ExternalRecordID,
		CreatedAt:              createdAt,
	}
}
