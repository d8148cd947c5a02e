package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

const bookingRecordType = "booking"

type bookingItem struct {
	models.Booking

	RecordType  string `dynamodbav:"record_type"`
	CreatedAtNs int64  `dynamodbav:"created_at_ns"`
}

type BookingDynamoRepository struct {
	api   DynamoAPI
	table string
}

func NewBookingDynamoRepository(api DynamoAPI, table string) *BookingDynamoRepository {
	return &BookingDynamoRepository{api: api, table: table}
}

func (r *BookingDynamoRepository) Insert(
	ctx context.Context,
	b *models.Booking,
) error {
	item := bookingItem{
		Booking:     *b,
		RecordType:  bookingRecordType,
		CreatedAtNs: b.CreatedAt.UnixNano(),
	}
	return putNew(ctx, r.api, r.table, item, "insert booking")
}

func (r *BookingDynamoRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]models.Booking, error) {

	raw, err := queryRecent(ctx, r.api, r.table, bookingRecordType, limit, "list bookings")
	if err != nil {
		return nil, err
	}

	var items []bookingItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, errs.Storage(err, "list bookings")
	}

	bookings := make([]models.Booking, 0, len(items))
	for _, it := range items {
		bookings = append(bookings, it.Booking)
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var item bookingItem
	if err := getByID(ctx, r.api, r.table, id, &item, "booking", "get booking"); err != nil {
		return nil, err
	}
	return &item.Booking, nil
}

func (r *BookingDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Booking, error) {

	res, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #s = :s"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, errs.NotFound("booking")
	}
	if err != nil {
		return nil, errs.Storage(err, "update booking status")
	}

	var item bookingItem
	if err := attributevalue.UnmarshalMap(res.Attributes, &item); err != nil {
		return nil, errs.Storage(err, "update booking status")
	}
	return &item.Booking, nil
}

func (r *BookingDynamoRepository) DeleteByID(
	ctx context.Context,
	id string,
) error {
	return deleteExisting(ctx, r.api, r.table, id, "booking", "delete booking")
}

func (r *BookingDynamoRepository) ListActiveTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	p := dynamodb.NewQueryPaginator(r.api, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(BookingDateIndex),
		KeyConditionExpression: aws.String("booking_date = :d"),
		FilterExpression:       aws.String("#s <> :cancelled"),
		ProjectionExpression:   aws.String("booking_time"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d":         &types.AttributeValueMemberS{Value: date},
			":cancelled": &types.AttributeValueMemberS{Value: string(domain.StatusCancelled)},
		},
	})

	times := []string{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errs.Storage(err, "list booked times")
		}

		var rows []struct {
			BookingTime string `dynamodbav:"booking_time"`
		}
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, errs.Storage(err, "list booked times")
		}
		for _, row := range rows {
			times = append(times, row.BookingTime)
		}
	}
	return times, nil
}

var _ domain.Repository = (*BookingDynamoRepository)(nil)
