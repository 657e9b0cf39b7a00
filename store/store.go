package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names shared by every record in the table.
const (
	AttrPartitionKey = "pk"
	AttrRowKey       = "rk"
	AttrType         = "type"
)

// Client is the subset of the DynamoDB API the store uses. It is satisfied
// by *dynamodb.Client and by test doubles.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	ExecuteStatement(ctx context.Context, params *dynamodb.ExecuteStatementInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ExecuteStatementOutput, error)
}

// Record is a retrieved record's attributes, including pk, rk and type.
type Record map[string]any

// Store provides put/get/query operations over partitioned records.
type Store struct {
	client Client
	config Config
}

// New creates a new Store instance.
func New(client Client, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Put writes a record addressed by its partition and row key. rec must
// marshal (via dynamodbav tags) to an item carrying non-empty pk and rk
// string attributes. Retrying with the same keys rewrites the same record,
// so the operation is idempotent. Backend failures surface as *WriteError.
func (s *Store) Put(ctx context.Context, rec any) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if !hasStringAttr(item, AttrPartitionKey) || !hasStringAttr(item, AttrRowKey) {
		return fmt.Errorf("store: record is missing %s/%s", AttrPartitionKey, AttrRowKey)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      item,
	})
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Get retrieves a record by key, returning ErrNotFound if missing.
// Most read paths query by row-key equality instead; Get is a convenience
// for callers that already hold both keys.
func (s *Store) Get(ctx context.Context, partitionKey, rowKey string) (Record, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.Table),
		Key: map[string]types.AttributeValue{
			AttrPartitionKey: &types.AttributeValueMemberS{Value: partitionKey},
			AttrRowKey:       &types.AttributeValueMemberS{Value: rowKey},
		},
	})
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var rec Record
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, &QueryError{Err: err}
	}
	return rec, nil
}

// Query runs the filter against the table and returns matching records.
// An empty filter scans the whole table. Results are drained page by page
// and capped client-side at limit (DefaultLimit when limit <= 0); the
// backend is not asked to enforce the cap. Backend failures surface as
// *QueryError carrying the filter text.
func (s *Store) Query(ctx context.Context, f Filter, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}

	stmt := fmt.Sprintf("SELECT * FROM %q", s.config.Table)
	if !f.Empty() {
		stmt += " WHERE " + f.Expr()
	}

	input := &dynamodb.ExecuteStatementInput{
		Statement: aws.String(stmt),
	}

	var recs []Record
	for {
		page, err := s.client.ExecuteStatement(ctx, input)
		if err != nil {
			return nil, &QueryError{Filter: f.Expr(), Err: err}
		}
		for _, raw := range page.Items {
			var rec Record
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, &QueryError{Filter: f.Expr(), Err: err}
			}
			recs = append(recs, rec)
			if len(recs) >= limit {
				return recs, nil
			}
		}
		if page.NextToken == nil {
			return recs, nil
		}
		input.NextToken = page.NextToken
	}
}

// hasStringAttr reports whether item carries a non-empty string attribute.
func hasStringAttr(item map[string]types.AttributeValue, name string) bool {
	v, ok := item[name].(*types.AttributeValueMemberS)
	return ok && v.Value != ""
}
