package repository

import (
	"context"
	"encoding/json"
	"time"

	"kantidad/internal/domain/entities"
	"kantidad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCalcRunsTableName = "calc_runs"
	calcRunProjectIndexName  = "project_id-index"
)

type calcRunItem struct {
	ID           string   `dynamodbav:"id"`
	ProjectID    string   `dynamodbav:"project_id"`
	Timestamp    string   `dynamodbav:"timestamp"`
	Status       string   `dynamodbav:"status"`
	Summary      string   `dynamodbav:"summary"`
	TakeoffLines string   `dynamodbav:"takeoff_lines"`
	BOQLines     string   `dynamodbav:"boq_lines"`
	Errors       []string `dynamodbav:"errors,omitempty"`
	Warnings     []string `dynamodbav:"warnings,omitempty"`
}

// CalcRunDynamoRepository persists calculation runs in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index with PK project_id (string)
//
// Runs are immutable, so Create refuses to overwrite an existing id.

type CalcRunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalcRunRepository = (*CalcRunDynamoRepository)(nil)

func NewCalcRunDynamoRepository(ddb *dynamodb.Client) *CalcRunDynamoRepository {
	return &CalcRunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALC_RUNS_TABLE", defaultCalcRunsTableName),
	}
}

func (r *CalcRunDynamoRepository) Create(ctx context.Context, run entities.CalcRun) (entities.CalcRun, error) {
	it, err := toCalcRunItem(run)
	if err != nil {
		return entities.CalcRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CalcRun{}, err
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
		return entities.CalcRun{}, err
	}
	return run, nil
}

func (r *CalcRunDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalcRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalcRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalcRun{}, nil
	}

	var it calcRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalcRun{}, err
	}
	return fromCalcRunItem(it)
}

func (r *CalcRunDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.CalcRun, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(calcRunProjectIndexName),
		KeyConditionExpression: aws.String("#pid = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	runs := make([]entities.CalcRun, 0, len(out.Items))
	for _, item := range out.Items {
		var it calcRunItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		run, err := fromCalcRunItem(it)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toCalcRunItem(run entities.CalcRun) (calcRunItem, error) {
	summary, err := json.Marshal(run.Summary)
	if err != nil {
		return calcRunItem{}, err
	}
	takeoffLines, err := json.Marshal(run.TakeoffLines)
	if err != nil {
		return calcRunItem{}, err
	}
	boqLines, err := json.Marshal(run.BOQLines)
	if err != nil {
		return calcRunItem{}, err
	}
	return calcRunItem{
		ID:           run.ID,
		ProjectID:    run.ProjectID,
		Timestamp:    run.Timestamp.UTC().Format(time.RFC3339Nano),
		Status:       string(run.Status),
		Summary:      string(summary),
		TakeoffLines: string(takeoffLines),
		BOQLines:     string(boqLines),
		Errors:       run.Errors,
		Warnings:     run.Warnings,
	}, nil
}

func fromCalcRunItem(it calcRunItem) (entities.CalcRun, error) {
	run := entities.CalcRun{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		Status:    entities.CalcRunStatus(it.Status),
		Errors:    it.Errors,
		Warnings:  it.Warnings,
	}
	if ts, err := time.Parse(time.RFC3339Nano, it.Timestamp); err == nil {
		run.Timestamp = ts
	}
	if err := json.Unmarshal([]byte(it.Summary), &run.Summary); err != nil {
		return entities.CalcRun{}, err
	}
	if err := json.Unmarshal([]byte(it.TakeoffLines), &run.TakeoffLines); err != nil {
		return entities.CalcRun{}, err
	}
	if err := json.Unmarshal([]byte(it.BOQLines), &run.BOQLines); err != nil {
		return entities.CalcRun{}, err
	}
	return run, nil
}
