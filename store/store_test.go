package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/platter/store"
)

// fakeClient is a Client test double recording inputs and replaying canned
// outputs.
type fakeClient struct {
	putInput *dynamodb.PutItemInput
	putErr   error

	getOutput *dynamodb.GetItemOutput
	getErr    error

	statements []string
	pages      []*dynamodb.ExecuteStatementOutput
	execErr    error
	execCalls  int
}

func (f *fakeClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOutput, nil
}

func (f *fakeClient) ExecuteStatement(ctx context.Context, params *dynamodb.ExecuteStatementInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ExecuteStatementOutput, error) {
	f.statements = append(f.statements, aws.ToString(params.Statement))
	if f.execErr != nil {
		return nil, f.execErr
	}
	page := f.pages[f.execCalls]
	f.execCalls++
	return page, nil
}

type testRecord struct {
	PartitionKey string  `dynamodbav:"pk"`
	RowKey       string  `dynamodbav:"rk"`
	Type         string  `dynamodbav:"type"`
	Price        float64 `dynamodbav:"price"`
}

func item(pk, rk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"rk": &types.AttributeValueMemberS{Value: rk},
	}
}

// --- Put ---

func TestPut_WritesMarshaledItem(t *testing.T) {
	client := &fakeClient{}
	s := store.New(client, store.Config{Table: "Records"})

	rec := testRecord{PartitionKey: "r1", RowKey: "meal-abc", Type: "meal", Price: 9.5}
	if err := s.Put(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.putInput == nil {
		t.Fatal("expected PutItem to be called")
	}
	if got := aws.ToString(client.putInput.TableName); got != "Records" {
		t.Errorf("expected table 'Records', got %q", got)
	}
	pk, ok := client.putInput.Item["pk"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "r1" {
		t.Errorf("expected pk attribute 'r1', got %#v", client.putInput.Item["pk"])
	}
	rk, ok := client.putInput.Item["rk"].(*types.AttributeValueMemberS)
	if !ok || rk.Value != "meal-abc" {
		t.Errorf("expected rk attribute 'meal-abc', got %#v", client.putInput.Item["rk"])
	}
}

func TestPut_RejectsMissingKeys(t *testing.T) {
	client := &fakeClient{}
	s := store.New(client, store.Config{})

	err := s.Put(context.Background(), testRecord{RowKey: "meal-abc"})
	if err == nil {
		t.Fatal("expected error for record without partition key")
	}
	if client.putInput != nil {
		t.Error("expected no PutItem call for invalid record")
	}
}

func TestPut_WrapsBackendError(t *testing.T) {
	backendErr := errors.New("throttled")
	client := &fakeClient{putErr: backendErr}
	s := store.New(client, store.Config{})

	err := s.Put(context.Background(), testRecord{PartitionKey: "r1", RowKey: "meal-abc"})

	var writeErr *store.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *WriteError, got %T", err)
	}
	if !errors.Is(err, backendErr) {
		t.Error("expected wrapped backend error")
	}
}

// --- Get ---

func TestGet_ReturnsRecord(t *testing.T) {
	client := &fakeClient{
		getOutput: &dynamodb.GetItemOutput{Item: item("Downtown", "ord-1")},
	}
	s := store.New(client, store.Config{})

	rec, err := s.Get(context.Background(), "Downtown", "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["pk"] != "Downtown" || rec["rk"] != "ord-1" {
		t.Errorf("unexpected record: %#v", rec)
	}
}

func TestGet_NotFound(t *testing.T) {
	client := &fakeClient{getOutput: &dynamodb.GetItemOutput{}}
	s := store.New(client, store.Config{})

	_, err := s.Get(context.Background(), "Downtown", "ord-404")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// --- Query ---

func TestQuery_UnfilteredScan(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ExecuteStatementOutput{{}},
	}
	s := store.New(client, store.Config{Table: "Records"})

	if _, err := s.Query(context.Background(), store.Filter{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `SELECT * FROM "Records"`
	if client.statements[0] != want {
		t.Errorf("expected statement %q, got %q", want, client.statements[0])
	}
}

func TestQuery_AppendsFilterExpression(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ExecuteStatementOutput{{}},
	}
	s := store.New(client, store.Config{Table: "Records"})

	f := store.BuildFilter([]store.Predicate{
		{Field: "pk", Op: store.OpEq, Value: "O'Brien"},
	})
	if _, err := s.Query(context.Background(), f, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `SELECT * FROM "Records" WHERE pk = 'O''Brien'`
	if client.statements[0] != want {
		t.Errorf("expected statement %q, got %q", want, client.statements[0])
	}
}

func TestQuery_DrainsPagesUntilLimit(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ExecuteStatementOutput{
			{
				Items:     []map[string]types.AttributeValue{item("a", "1"), item("a", "2")},
				NextToken: aws.String("page2"),
			},
			{
				Items:     []map[string]types.AttributeValue{item("a", "3"), item("a", "4")},
				NextToken: aws.String("page3"),
			},
		},
	}
	s := store.New(client, store.Config{})

	recs, err := s.Query(context.Background(), store.Filter{}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	// The cap is reached mid-page; the third page is never requested.
	if client.execCalls != 2 {
		t.Errorf("expected 2 backend calls, got %d", client.execCalls)
	}
}

func TestQuery_StopsWhenPagesRunOut(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ExecuteStatementOutput{
			{Items: []map[string]types.AttributeValue{item("a", "1")}},
		},
	}
	s := store.New(client, store.Config{})

	recs, err := s.Query(context.Background(), store.Filter{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("expected 1 record, got %d", len(recs))
	}
}

func TestQuery_DefaultLimit(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ExecuteStatementOutput{
			{
				Items:     []map[string]types.AttributeValue{item("a", "1"), item("a", "2"), item("a", "3")},
				NextToken: aws.String("more"),
			},
		},
	}
	s := store.New(client, store.Config{DefaultLimit: 2})

	recs, err := s.Query(context.Background(), store.Filter{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected DefaultLimit of 2 to apply, got %d records", len(recs))
	}
}

func TestQuery_WrapsBackendError(t *testing.T) {
	backendErr := errors.New("table missing")
	client := &fakeClient{execErr: backendErr}
	s := store.New(client, store.Config{})

	f := store.BuildFilter([]store.Predicate{
		{Field: "pk", Op: store.OpEq, Value: "Downtown"},
	})
	_, err := s.Query(context.Background(), f, 5)

	var queryErr *store.QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("expected *QueryError, got %T", err)
	}
	if !errors.Is(err, backendErr) {
		t.Error("expected wrapped backend error")
	}
	if !strings.Contains(queryErr.Filter, "Downtown") {
		t.Errorf("expected filter text in error, got %q", queryErr.Filter)
	}
}
