package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dieselmedia/booking-api/internal/errs"
)

// DynamoDB index names. Both tables are keyed by "id".
const (
	CreatedIndex     = "record_type-created_at_ns-index"
	BookingDateIndex = "booking_date-index"
)

// DynamoAPI is the subset of *dynamodb.Client the document repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// putNew writes item unless its id already exists.
func putNew(ctx context.Context, api DynamoAPI, table string, item any, op string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errs.Storage(err, op)
	}

	_, err = api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return errs.Storage(err, op)
	}
	return nil
}

func getByID(ctx context.Context, api DynamoAPI, table, id string, out any, entity, op string) error {
	res, err := api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return errs.Storage(err, op)
	}
	if len(res.Item) == 0 {
		return errs.NotFound(entity)
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return errs.Storage(err, op)
	}
	return nil
}

func deleteExisting(ctx context.Context, api DynamoAPI, table, id, entity, op string) error {
	_, err := api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if isConditionFailed(err) {
		return errs.NotFound(entity)
	}
	if err != nil {
		return errs.Storage(err, op)
	}
	return nil
}

// queryRecent pages through CreatedIndex newest first until limit items are read.
func queryRecent(ctx context.Context, api DynamoAPI, table, recordType string, limit int, op string) ([]map[string]types.AttributeValue, error) {
	items := []map[string]types.AttributeValue{}

	p := dynamodb.NewQueryPaginator(api, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(CreatedIndex),
		KeyConditionExpression: aws.String("record_type = :rt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rt": &types.AttributeValueMemberS{Value: recordType},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})

	for p.HasMorePages() && len(items) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errs.Storage(err, op)
		}
		items = append(items, page.Items...)
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
