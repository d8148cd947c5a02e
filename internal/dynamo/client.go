package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dieselmedia/booking-api/internal/config"
)

// NewClient builds a DynamoDB client with static credentials and an optional
// endpoint override (DynamoDB Local).
func NewClient(cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("dynamodb: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required")
	}

	opts := dynamodb.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return dynamodb.New(opts), nil
}

// Ping checks that table exists and is reachable.
func Ping(ctx context.Context, client *dynamodb.Client, table string) error {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", table, err)
	}
	return nil
}
