package repository

import (
	"context"
	"errors"
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID                        string `dynamodbav:"id"`
	Name                      string `dynamodbav:"name"`
	Description               string `dynamodbav:"description,omitempty"`
	ProcessNumber             string `dynamodbav:"process_number,omitempty"`
	Status                    string `dynamodbav:"status"`
	CreatedAt                 string `dynamodbav:"created_at"`
	FinalizedAt               string `dynamodbav:"finalized_at,omitempty"`
	FinalizationJustification string `dynamodbav:"finalization_justification,omitempty"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Finalize runs under a condition on the current status so two concurrent
// finalize calls cannot both succeed; the loser gets the zero Quotation.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return unmarshalQuotationAttributes(out.Attributes)
}

// Finalize transitions the quotation to finalized only while it is still open.
func (r *QuotationDynamoRepository) Finalize(ctx context.Context, id string, justification string, at time.Time) (entities.Quotation, error) {
	expr := "SET #status = :finalized, #finalized_at = :at"
	vals := map[string]types.AttributeValue{
		":finalized": &types.AttributeValueMemberS{Value: string(entities.QuotationStatusFinalized)},
		":at":        &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#id":           "id",
		"#status":       "status",
		"#finalized_at": "finalized_at",
	}
	if justification != "" {
		expr += ", #finalization_justification = :justification"
		vals[":justification"] = &types.AttributeValueMemberS{Value: justification}
		names["#finalization_justification"] = "finalization_justification"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status <> :finalized"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return unmarshalQuotationAttributes(out.Attributes)
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalQuotationAttributes(attrs map[string]types.AttributeValue) (entities.Quotation, error) {
	if len(attrs) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:                        q.ID,
		Name:                      q.Name,
		Description:               q.Description,
		ProcessNumber:             q.ProcessNumber,
		Status:                    string(q.Status),
		CreatedAt:                 q.CreatedAt.UTC().Format(time.RFC3339Nano),
		FinalizationJustification: q.FinalizationJustification,
	}
	if q.FinalizedAt != nil {
		it.FinalizedAt = q.FinalizedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.Quotation{
		ID:                        it.ID,
		Name:                      it.Name,
		Description:               it.Description,
		ProcessNumber:             it.ProcessNumber,
		Status:                    entities.QuotationStatus(it.Status),
		CreatedAt:                 createdAt,
		FinalizationJustification: it.FinalizationJustification,
	}
	if it.FinalizedAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.FinalizedAt); err == nil {
			q.FinalizedAt = &at
		}
	}
	return q
}
