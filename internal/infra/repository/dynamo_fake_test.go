package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo understands exactly the requests the repositories send.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	queries  int
	err      error
}

func newFakeDynamo(pageSize int) *fakeDynamo {
	return &fakeDynamo{
		items:    make(map[string]map[string]types.AttributeValue),
		pageSize: pageSize,
	}
}

func str(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func num(item map[string]types.AttributeValue, key string) int64 {
	if v, ok := item[key].(*types.AttributeValueMemberN); ok {
		n, _ := strconv.ParseInt(v.Value, 10, 64)
		return n
	}
	return 0
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	id := str(in.Item, "id")
	if _, exists := f.items[id]; exists {
		return nil, conditionFailed()
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[str(in.Key, "id")]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[str(in.Key, "id")]
	if !ok {
		return nil, conditionFailed()
	}
	item[in.ExpressionAttributeNames["#s"]] = in.ExpressionAttributeValues[":s"]
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	id := str(in.Key, "id")
	if _, ok := f.items[id]; !ok {
		return nil, conditionFailed()
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries++
	if f.err != nil {
		return nil, f.err
	}

	var matched []map[string]types.AttributeValue
	switch aws.ToString(in.IndexName) {
	case CreatedIndex:
		rt := str(in.ExpressionAttributeValues, ":rt")
		for _, it := range f.items {
			if str(it, "record_type") == rt {
				matched = append(matched, it)
			}
		}
		sort.Slice(matched, func(i, j int) bool {
			return num(matched[i], "created_at_ns") > num(matched[j], "created_at_ns")
		})
	case BookingDateIndex:
		d := str(in.ExpressionAttributeValues, ":d")
		cancelled := str(in.ExpressionAttributeValues, ":cancelled")
		for _, it := range f.items {
			if str(it, "booking_date") == d && str(it, "status") != cancelled {
				matched = append(matched, map[string]types.AttributeValue{
					"id":           it["id"],
					"booking_time": it["booking_time"],
				})
			}
		}
		sort.Slice(matched, func(i, j int) bool {
			return str(matched[i], "id") < str(matched[j], "id")
		})
	default:
		return nil, errors.New("unexpected index " + aws.ToString(in.IndexName))
	}

	start := 0
	if after := str(in.ExclusiveStartKey, "id"); after != "" {
		for i, it := range matched {
			if str(it, "id") == after {
				start = i + 1
				break
			}
		}
	}

	size := f.pageSize
	if in.Limit != nil && int(*in.Limit) < size {
		size = int(*in.Limit)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	out := &dynamodb.QueryOutput{Items: matched[start:end]}
	if end < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": matched[end-1]["id"]}
	}
	return out, nil
}

var _ DynamoAPI = (*fakeDynamo)(nil)
