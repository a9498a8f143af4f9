package repository

import (
	"context"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditTableName = "audit_logs"
	auditJobIndexName     = "job_id-index"
)

type auditLogItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id,omitempty"`
	Action    string `dynamodbav:"action"`
	Entity    string `dynamodbav:"entity"`
	EntityID  string `dynamodbav:"entity_id"`
	JobID     string `dynamodbav:"job_id,omitempty"`
	Details   string `dynamodbav:"details,omitempty"`
	Metadata  string `dynamodbav:"metadata,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository persists audit entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index: PK job_id (string), SK created_at (string)
//
// Entries are written as soon as Append is called; they do not take part in
// the SQL transaction of the mutation.
type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditLogDynamoRepository {
	if tableName == "" {
		tableName = defaultAuditTableName
	}
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, entry entities.AuditLog) error {
	av, err := attributevalue.MarshalMap(toAuditLogItem(entry))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *AuditLogDynamoRepository) ListByJob(ctx context.Context, jobID string, limit int) ([]entities.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditJobIndexName),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var items []auditLogItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	logs := make([]entities.AuditLog, 0, len(items))
	for _, it := range items {
		logs = append(logs, fromAuditLogItem(it))
	}
	return logs, nil
}

func toAuditLogItem(e entities.AuditLog) auditLogItem {
	it := auditLogItem{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    string(e.Action),
		Entity:    string(e.Entity),
		EntityID:  e.EntityID,
		Details:   e.Details,
		Metadata:  string(e.Metadata),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.JobID != nil {
		it.JobID = *e.JobID
	}
	return it
}

func fromAuditLogItem(it auditLogItem) entities.AuditLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.AuditLog{
		ID:        it.ID,
		UserID:    it.UserID,
		Action:    entities.AuditAction(it.Action),
		Entity:    entities.EntityType(it.Entity),
		EntityID:  it.EntityID,
		Details:   it.Details,
		CreatedAt: createdAt,
	}
	if it.Metadata != "" {
		e.Metadata = []byte(it.Metadata)
	}
	if it.JobID != "" {
		jobID := it.JobID
		e.JobID = &jobID
	}
	return e
}

