package repository

import (
	"context"
	"fmt"
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	EventID       string `dynamodbav:"event_id"`
	Provider      string `dynamodbav:"provider"`
	EventType     string `dynamodbav:"event_type"`
	TransactionID string `dynamodbav:"transaction_id"`
	Reference     string `dynamodbav:"reference,omitempty"`
	Payload       string `dynamodbav:"payload,omitempty"`
	Processed     bool   `dynamodbav:"processed"`
	Failed        bool   `dynamodbav:"failed"`
	ErrorMessage  string `dynamodbav:"error_message,omitempty"`
	RetryCount    int    `dynamodbav:"retry_count"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	ProcessedAt   string `dynamodbav:"processed_at,omitempty"`
}

// WebhookEventDynamoRepository is the webhook dedup store.
//
// Table requirements:
//   - PK: event_id (string)
//
// The conditional PutItem is what makes concurrent deliveries of the same
// event safe: exactly one of them creates the row.

type WebhookEventDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb DynamoDBAPI, tableName string) *WebhookEventDynamoRepository {
	if tableName == "" {
		tableName = defaultWebhookEventsTableName
	}
	return &WebhookEventDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *WebhookEventDynamoRepository) CreateIfNotExists(ctx context.Context, e entities.WebhookEvent) (bool, entities.WebhookEvent, error) {
	av, err := attributevalue.MarshalMap(toWebhookEventItem(e))
	if err != nil {
		return false, entities.WebhookEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	if err == nil {
		return true, e, nil
	}
	if !isConditionalCheckFailed(err) {
		return false, entities.WebhookEvent{}, err
	}

	stored, err := r.GetByID(ctx, e.EventID)
	if err != nil {
		return false, entities.WebhookEvent{}, err
	}
	if stored.EventID == "" {
		return false, entities.WebhookEvent{}, fmt.Errorf("webhook event %s vanished after conditional check", e.EventID)
	}
	return false, stored, nil
}

func (r *WebhookEventDynamoRepository) GetByID(ctx context.Context, eventID string) (entities.WebhookEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            eventKey(eventID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.WebhookEvent{}, nil
	}
	var it webhookEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookEvent{}, err
	}
	return fromWebhookEventItem(it), nil
}

// ClaimForRetry takes over an unprocessed event that failed or whose
// updated_at is older than staleBefore. Only one concurrent caller wins.
func (r *WebhookEventDynamoRepository) ClaimForRetry(ctx context.Context, eventID string, staleBefore time.Time) (bool, error) {
	_, err := r.update(ctx, eventID,
		"#processed = :false AND (#failed = :true OR #updated_at < :stale)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #failed = :false, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":stale":      &types.AttributeValueMemberS{Value: formatTime(staleBefore)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#processed":  "processed",
				"#failed":     "failed",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WebhookEventDynamoRepository) MarkProcessed(ctx context.Context, eventID string) error {
	_, err := r.update(ctx, eventID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #processed = :true, #failed = :false, #processed_at = :now, #updated_at = :now REMOVE #error_message"
		vals := map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":now":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#processed":     "processed",
			"#failed":        "failed",
			"#processed_at":  "processed_at",
			"#updated_at":    "updated_at",
			"#error_message": "error_message",
		}
		return expr, vals, names
	})
	return err
}

func (r *WebhookEventDynamoRepository) MarkFailed(ctx context.Context, eventID string, errorMessage string) error {
	_, err := r.update(ctx, eventID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #failed = :true, #error_message = :error_message, #updated_at = :now ADD #retry_count :one"
		vals := map[string]types.AttributeValue{
			":true":          &types.AttributeValueMemberBOOL{Value: true},
			":error_message": &types.AttributeValueMemberS{Value: errorMessage},
			":now":           &types.AttributeValueMemberS{Value: now},
			":one":           &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#failed":        "failed",
			"#error_message": "error_message",
			"#updated_at":    "updated_at",
			"#retry_count":   "retry_count",
		}
		return expr, vals, names
	})
	return err
}

// update runs an UpdateItem on an existing event. extraCondition is ANDed
// with attribute_exists(event_id); a failed condition is returned as is.
func (r *WebhookEventDynamoRepository) update(
	ctx context.Context,
	eventID string,
	extraCondition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (*dynamodb.UpdateItemOutput, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	cond := "attribute_exists(#event_id)"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}
	return r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       eventKey(eventID),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#event_id": "event_id"}),
	})
}

func eventKey(eventID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"event_id": &types.AttributeValueMemberS{Value: eventID},
	}
}

func toWebhookEventItem(e entities.WebhookEvent) webhookEventItem {
	it := webhookEventItem{
		EventID:       e.EventID,
		Provider:      string(e.Provider),
		EventType:     e.EventType,
		TransactionID: e.TransactionID,
		Reference:     e.Reference,
		Payload:       e.Payload,
		Processed:     e.Processed,
		Failed:        e.Failed,
		ErrorMessage:  e.ErrorMessage,
		RetryCount:    e.RetryCount,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
	if e.ProcessedAt != nil {
		it.ProcessedAt = formatTime(*e.ProcessedAt)
	}
	return it
}

func fromWebhookEventItem(it webhookEventItem) entities.WebhookEvent {
	e := entities.WebhookEvent{
		EventID:       it.EventID,
		Provider:      entities.GatewayName(it.Provider),
		EventType:     it.EventType,
		TransactionID: it.TransactionID,
		Reference:     it.Reference,
		Payload:       it.Payload,
		Processed:     it.Processed,
		Failed:        it.Failed,
		ErrorMessage:  it.ErrorMessage,
		RetryCount:    it.RetryCount,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.ProcessedAt != "" {
		processedAt := parseTime(it.ProcessedAt)
		e.ProcessedAt = &processedAt
	}
	return e
}
