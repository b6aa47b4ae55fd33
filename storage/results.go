package storage

import (
	"context"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const resultProgramIndex = "ProgramIndex"

type ResultStorage interface {
	Get(ctx context.Context, id string) (*Result, error)
	GetAll(ctx context.Context) ([]*Result, error)
	GetByStatus(ctx context.Context, status ResultStatus) ([]*Result, error)
	GetByProgram(ctx context.Context, programID string) ([]*Result, error)
	IsPublished(ctx context.Context, programID string) (bool, error)
	Create(ctx context.Context, result *Result) error
	// Approve publishes a pending result. It fails with ErrAlreadyPublished
	// when the program already has an approved result and ErrConditionFailed
	// when the result is not pending.
	Approve(ctx context.Context, id, programID string, at time.Time) error
	Reject(ctx context.Context, id string, at time.Time) error
	// ReplaceApproved overwrites entries and penalties of an approved result
	// in a single write.
	ReplaceApproved(ctx context.Context, result *Result) error
	DeleteApproved(ctx context.Context, id, programID string) error
}

type DynamoResultStorage struct {
	Client            *dynamodb.Client
	TableName         string
	PublicationsTable string
	PageSize          int32 // query page limit, 0 leaves it to DynamoDB
}

var statusName = map[string]string{"#status": "Status"}

func (s *DynamoResultStorage) Get(ctx context.Context, id string) (*Result, error) {
	return getByKey[Result](ctx, s.Client, s.TableName, id, "RESULT")
}

func (s *DynamoResultStorage) GetAll(ctx context.Context) ([]*Result, error) {
	return scanAll[Result](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "RESULT")
}

func (s *DynamoResultStorage) GetByStatus(ctx context.Context, status ResultStatus) ([]*Result, error) {
	return scanAll[Result](ctx, s.Client, &dynamodb.ScanInput{
		TableName:                &s.TableName,
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("#status = :status"),
		ExpressionAttributeNames: statusName,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}, "RESULT")
}

func (s *DynamoResultStorage) GetByProgram(ctx context.Context, programID string) ([]*Result, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		IndexName:              aws.String(resultProgramIndex),
		KeyConditionExpression: aws.String("ProgramID = :program"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":program": &types.AttributeValueMemberS{Value: programID},
		},
	}
	if s.PageSize > 0 {
		input.Limit = aws.Int32(s.PageSize)
	}
	return queryAll[Result](ctx, s.Client, input, "RESULT")
}

func (s *DynamoResultStorage) IsPublished(ctx context.Context, programID string) (bool, error) {
	p, err := getByKey[Publication](ctx, s.Client, s.PublicationsTable, programID, "RESULT")
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

func (s *DynamoResultStorage) Create(ctx context.Context, result *Result) error {
	item, err := attributevalue.MarshalMap(result)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to marshal result: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			logging.Log.Warnf("RESULT: item with ID %s already exists", result.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("RESULT: failed to create result: %v", err)
		return err
	}
	return nil
}

func (s *DynamoResultStorage) Approve(ctx context.Context, id, programID string, at time.Time) error {
	marker, err := attributevalue.MarshalMap(&Publication{ProgramID: programID, ResultID: id, CreatedAt: at})
	if err != nil {
		logging.Log.Errorf("RESULT: failed to marshal publication marker: %v", err)
		return err
	}
	decidedAt, err := attributevalue.Marshal(at)
	if err != nil {
		return err
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           &s.PublicationsTable,
				Item:                marker,
				ConditionExpression: aws.String("attribute_not_exists(PK)"),
			}},
			{Update: &types.Update{
				TableName:                &s.TableName,
				Key:                      pkKey(id),
				UpdateExpression:         aws.String("SET #status = :approved, DecidedAt = :at"),
				ConditionExpression:      aws.String("#status = :pending"),
				ExpressionAttributeNames: statusName,
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":approved": &types.AttributeValueMemberS{Value: string(StatusApproved)},
					":pending":  &types.AttributeValueMemberS{Value: string(StatusPending)},
					":at":       decidedAt,
				},
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) {
			logging.Log.Warnf("RESULT: program %s already published, refusing to approve %s", programID, id)
			return ErrAlreadyPublished
		}
		if cancelledAt(err, 1) {
			return ErrConditionFailed
		}
		logging.Log.Errorf("RESULT: failed to approve result %s: %v", id, err)
		return err
	}
	return nil
}

func (s *DynamoResultStorage) Reject(ctx context.Context, id string, at time.Time) error {
	decidedAt, err := attributevalue.Marshal(at)
	if err != nil {
		return err
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.TableName),
		Key:                      pkKey(id),
		UpdateExpression:         aws.String("SET #status = :rejected, DecidedAt = :at"),
		ConditionExpression:      aws.String("#status = :pending"),
		ExpressionAttributeNames: statusName,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected": &types.AttributeValueMemberS{Value: string(StatusRejected)},
			":pending":  &types.AttributeValueMemberS{Value: string(StatusPending)},
			":at":       decidedAt,
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrConditionFailed
		}
		logging.Log.Errorf("RESULT: failed to reject result %s: %v", id, err)
		return err
	}
	return nil
}

func (s *DynamoResultStorage) ReplaceApproved(ctx context.Context, result *Result) error {
	item, err := attributevalue.MarshalMap(result)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to marshal updated result: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                &s.TableName,
		Item:                     item,
		ConditionExpression:      aws.String("#status = :approved AND ProgramID = :program"),
		ExpressionAttributeNames: statusName,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(StatusApproved)},
			":program":  &types.AttributeValueMemberS{Value: result.ProgramID},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrConditionFailed
		}
		logging.Log.Errorf("RESULT: failed to update result %s: %v", result.ID, err)
		return err
	}
	return nil
}

func (s *DynamoResultStorage) DeleteApproved(ctx context.Context, id, programID string) error {
	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                &s.TableName,
				Key:                      pkKey(id),
				ConditionExpression:      aws.String("#status = :approved"),
				ExpressionAttributeNames: statusName,
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":approved": &types.AttributeValueMemberS{Value: string(StatusApproved)},
				},
			}},
			{Delete: &types.Delete{
				TableName:           &s.PublicationsTable,
				Key:                 pkKey(programID),
				ConditionExpression: aws.String("ResultID = :id"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":id": &types.AttributeValueMemberS{Value: id},
				},
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) || cancelledAt(err, 1) {
			return ErrConditionFailed
		}
		logging.Log.Errorf("RESULT: failed to delete result %s: %v", id, err)
		return err
	}
	logging.Log.Infof("RESULT: deleted approved result %s of program %s", id, programID)
	return nil
}
