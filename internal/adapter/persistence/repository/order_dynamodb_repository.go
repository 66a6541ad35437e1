package repository

import (
	"context"
	"errors"
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

var ErrOrderAlreadyExists = errors.New("order already exists")

type orderItem struct {
	OrderNumber   string                 `dynamodbav:"order_number"`
	ID            string                 `dynamodbav:"id"`
	UserID        string                 `dynamodbav:"user_id"`
	CustomerEmail string                 `dynamodbav:"customer_email"`
	CustomerName  string                 `dynamodbav:"customer_name,omitempty"`
	CustomerPhone string                 `dynamodbav:"customer_phone,omitempty"`
	Description   string                 `dynamodbav:"description,omitempty"`
	PaymentStatus string                 `dynamodbav:"payment_status"`
	Amount        string                 `dynamodbav:"amount"`
	Currency      string                 `dynamodbav:"currency"`
	PaymentMethod string                 `dynamodbav:"payment_method"`
	Gateway       string                 `dynamodbav:"gateway"`
	Metadata      map[string]interface{} `dynamodbav:"metadata"`
	CreatedAt     string                 `dynamodbav:"created_at"`
	UpdatedAt     string                 `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: order_number (string)
//
// order_number is the key because every webhook resolves the order by the
// reference the provider echoes back; that lookup is then a consistent GetItem.

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Metadata == nil {
		o.Metadata = map[string]interface{}{}
	}
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_number)"),
		ExpressionAttributeNames: map[string]string{
			"#order_number": "order_number",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdatePayment replaces payment_status and metadata. A missing order yields
// a zero Order and a nil error.
func (r *OrderDynamoRepository) UpdatePayment(ctx context.Context, orderNumber string, status entities.PaymentStatus, metadata map[string]interface{}) (entities.Order, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metaAV, err := attributevalue.Marshal(metadata)
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#order_number)"),
		UpdateExpression:    aws.String("SET #payment_status = :payment_status, #metadata = :metadata, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
			":metadata":       metaAV,
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#payment_status": "payment_status", "#metadata": "metadata", "#updated_at": "updated_at"},
			map[string]string{"#order_number": "order_number"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		OrderNumber:   o.OrderNumber,
		ID:            o.ID,
		UserID:        o.UserID,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Description:   o.Description,
		PaymentStatus: string(o.PaymentStatus),
		Amount:        o.Amount.String(),
		Currency:      string(o.Currency),
		PaymentMethod: string(o.PaymentMethod),
		Gateway:       string(o.Gateway),
		Metadata:      o.Metadata,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Order{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		UserID:        it.UserID,
		CustomerEmail: it.CustomerEmail,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		Description:   it.Description,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		Amount:        amount,
		Currency:      entities.Currency(it.Currency),
		PaymentMethod: entities.PaymentMethodType(it.PaymentMethod),
		Gateway:       entities.GatewayName(it.Gateway),
		Metadata:      it.Metadata,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
