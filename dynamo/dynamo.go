// Package dynamo provides a DynamoDB implementation of the store Backend.
//
// All records and per-kind index items live in one table keyed by a single
// "pk" string attribute; the internal/keyspace package composes the keys.
// Reads are strongly consistent so a cell's read-modify-write cycle always
// observes its own prior write.
package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/artblock-labs/plinth/internal/keyspace"
)

// Backend persists records and indexes in a single DynamoDB table.
type Backend struct {
	client *dynamodb.Client
	config Config
}

// New creates a DynamoDB backend.
func New(client *dynamodb.Client, config Config) *Backend {
	config.validate()
	return &Backend{
		client: client,
		config: config,
	}
}

// GetRecord implements store.Backend.
func (b *Backend) GetRecord(ctx context.Context, kind, id string) ([]byte, error) {
	result, err := b.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(b.config.Table),
		Key:            pk(keyspace.RecordKey(kind, id)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo: get record %s/%s: %w", kind, id, err)
	}
	if result.Item == nil {
		return nil, nil
	}

	data, ok := result.Item["data"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, fmt.Errorf("dynamo: record %s/%s has no data attribute", kind, id)
	}
	return data.Value, nil
}

// PutRecord implements store.Backend.
func (b *Backend) PutRecord(ctx context.Context, kind, id string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := b.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.config.Table),
		Item: map[string]types.AttributeValue{
			"pk":         &types.AttributeValueMemberS{Value: keyspace.RecordKey(kind, id)},
			"kind":       &types.AttributeValueMemberS{Value: kind},
			"id":         &types.AttributeValueMemberS{Value: id},
			"data":       &types.AttributeValueMemberB{Value: data},
			"updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		return fmt.Errorf("dynamo: put record %s/%s: %w", kind, id, err)
	}
	return nil
}

// GetIndex implements store.Backend.
func (b *Backend) GetIndex(ctx context.Context, kind string) ([]string, error) {
	result, err := b.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(b.config.Table),
		Key:            pk(keyspace.IndexKey(kind)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo: get index %s: %w", kind, err)
	}
	if result.Item == nil {
		return nil, nil
	}

	// A list attribute, not a string set: index order is insertion order.
	var ids []string
	if err := attributevalue.Unmarshal(result.Item["ids"], &ids); err != nil {
		return nil, fmt.Errorf("dynamo: unmarshal index %s: %w", kind, err)
	}
	return ids, nil
}

// PutIndex implements store.Backend.
func (b *Backend) PutIndex(ctx context.Context, kind string, ids []string) error {
	idsAttr, err := attributevalue.Marshal(ids)
	if err != nil {
		return fmt.Errorf("dynamo: marshal index %s: %w", kind, err)
	}

	_, err = b.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.config.Table),
		Item: map[string]types.AttributeValue{
			"pk":   &types.AttributeValueMemberS{Value: keyspace.IndexKey(kind)},
			"kind": &types.AttributeValueMemberS{Value: kind},
			"ids":  idsAttr,
		},
	})
	if err != nil {
		return fmt.Errorf("dynamo: put index %s: %w", kind, err)
	}
	return nil
}

func pk(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: key},
	}
}
