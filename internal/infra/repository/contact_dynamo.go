package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

const contactRecordType = "contact_message"

type contactItem struct {
	models.ContactMessage

	RecordType  string `dynamodbav:"record_type"`
	CreatedAtNs int64  `dynamodbav:"created_at_ns"`
}

type ContactDynamoRepository struct {
	api   DynamoAPI
	table string
}

func NewContactDynamoRepository(api DynamoAPI, table string) *ContactDynamoRepository {
	return &ContactDynamoRepository{api: api, table: table}
}

func (r *ContactDynamoRepository) Insert(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	item := contactItem{
		ContactMessage: *m,
		RecordType:     contactRecordType,
		CreatedAtNs:    m.CreatedAt.UnixNano(),
	}
	return putNew(ctx, r.api, r.table, item, "insert contact message")
}

func (r *ContactDynamoRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]models.ContactMessage, error) {

	raw, err := queryRecent(ctx, r.api, r.table, contactRecordType, limit, "list contact messages")
	if err != nil {
		return nil, err
	}

	var items []contactItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, errs.Storage(err, "list contact messages")
	}

	messages := make([]models.ContactMessage, 0, len(items))
	for _, it := range items {
		messages = append(messages, it.ContactMessage)
	}
	return messages, nil
}

func (r *ContactDynamoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.ContactMessage, error) {

	var item contactItem
	if err := getByID(ctx, r.api, r.table, id, &item, "message", "get contact message"); err != nil {
		return nil, err
	}
	return &item.ContactMessage, nil
}

func (r *ContactDynamoRepository) DeleteByID(
	ctx context.Context,
	id string,
) error {
	return deleteExisting(ctx, r.api, r.table, id, "message", "delete contact message")
}

var _ domain.Repository = (*ContactDynamoRepository)(nil)
