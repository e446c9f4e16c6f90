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

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Snapshot  string `dynamodbav:"snapshot"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The snapshot (grid, levels, templates, instances, schedules) is stored
// whole as a JSON attribute: the engines always consume it whole, so
// per-field attributes would buy nothing.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it)
}

func toProjectItem(p entities.Project) (projectItem, error) {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return projectItem{}, err
	}
	return projectItem{
		ID:        p.ID,
		Name:      p.Name,
		Snapshot:  string(snapshot),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProjectItem(it projectItem) (entities.Project, error) {
	var p entities.Project
	if err := json.Unmarshal([]byte(it.Snapshot), &p); err != nil {
		return entities.Project{}, err
	}
	// the top-level attributes win over whatever the snapshot carried
	p.ID = it.ID
	p.Name = it.Name
	if createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt); err == nil {
		p.CreatedAt = createdAt
	}
	if updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		p.UpdatedAt = updatedAt
	}
	return p, nil
}
