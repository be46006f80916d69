package repository

import (
	"context"
	"time"

	"vantivpay/internal/domain/entities"
	"vantivpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsOrderIDIndex     = "order_id-index"
)

type transactionItem struct {
	ID          string            `dynamodbav:"id"`
	OrderID     string            `dynamodbav:"order_id,omitempty"`
	Kind        string            `dynamodbav:"kind"`
	Amount      *int64            `dynamodbav:"amount,omitempty"`
	Success     bool              `dynamodbav:"success"`
	Message     string            `dynamodbav:"message,omitempty"`
	VantivTxnID string            `dynamodbav:"vantiv_txn_id,omitempty"`
	Token       string            `dynamodbav:"token,omitempty"`
	AVSCode     string            `dynamodbav:"avs_code,omitempty"`
	CVVCode     string            `dynamodbav:"cvv_code,omitempty"`
	Date        string            `dynamodbav:"date"`
	Params      map[string]string `dynamodbav:"params,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Success:     t.Success,
		Message:     t.Message,
		VantivTxnID: t.VantivTxnID,
		Token:       t.Token,
		AVSCode:     t.AVSCode,
		CVVCode:     t.CVVCode,
		Date:        t.Date.UTC().Format(time.RFC3339Nano),
		Params:      t.Params,
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Transaction{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Kind:        entities.TransactionType(it.Kind),
		Amount:      it.Amount,
		Success:     it.Success,
		Message:     it.Message,
		VantivTxnID: it.VantivTxnID,
		Token:       it.Token,
		AVSCode:     it.AVSCode,
		CVVCode:     it.CVVCode,
		Date:        dt,
		Params:      it.Params,
	}
}
