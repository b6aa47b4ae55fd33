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

type ReplacementStorage interface {
	Get(ctx context.Context, id string) (*Replacement, error)
	GetAll(ctx context.Context) ([]*Replacement, error)
	FindPending(ctx context.Context, programID, oldStudentID string) (*Replacement, error)
	Create(ctx context.Context, replacement *Replacement) error
	Reject(ctx context.Context, id string, at time.Time) error
	// ApproveWithSwap removes the old registration, inserts the new one and
	// marks the request approved, all or nothing.
	ApproveWithSwap(ctx context.Context, replacement *Replacement, registration *Registration, at time.Time) error
}

type DynamoReplacementStorage struct {
	Client             *dynamodb.Client
	TableName          string
	RegistrationsTable string
}

func (s *DynamoReplacementStorage) Get(ctx context.Context, id string) (*Replacement, error) {
	return getByKey[Replacement](ctx, s.Client, s.TableName, id, "REPLACEMENT")
}

func (s *DynamoReplacementStorage) GetAll(ctx context.Context) ([]*Replacement, error) {
	return scanAll[Replacement](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "REPLACEMENT")
}

func (s *DynamoReplacementStorage) FindPending(ctx context.Context, programID, oldStudentID string) (*Replacement, error) {
	items, err := scanAll[Replacement](ctx, s.Client, &dynamodb.ScanInput{
		TableName:                &s.TableName,
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("ProgramID = :program AND OldStudentID = :old AND #status = :pending"),
		ExpressionAttributeNames: statusName,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":program": &types.AttributeValueMemberS{Value: programID},
			":old":     &types.AttributeValueMemberS{Value: oldStudentID},
			":pending": &types.AttributeValueMemberS{Value: string(StatusPending)},
		},
	}, "REPLACEMENT")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (s *DynamoReplacementStorage) Create(ctx context.Context, replacement *Replacement) error {
	item, err := attributevalue.MarshalMap(replacement)
	if err != nil {
		logging.Log.Errorf("REPLACEMENT: failed to marshal request: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("REPLACEMENT: failed to create request: %v", err)
		return err
	}
	return nil
}

func (s *DynamoReplacementStorage) Reject(ctx context.Context, id string, at time.Time) error {
	update, err := s.decideUpdate(id, StatusRejected, at)
	if err != nil {
		return err
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 update.TableName,
		Key:                       update.Key,
		UpdateExpression:          update.UpdateExpression,
		ConditionExpression:       update.ConditionExpression,
		ExpressionAttributeNames:  update.ExpressionAttributeNames,
		ExpressionAttributeValues: update.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrConditionFailed
		}
		logging.Log.Errorf("REPLACEMENT: failed to reject request %s: %v", id, err)
		return err
	}
	return nil
}

func (s *DynamoReplacementStorage) ApproveWithSwap(ctx context.Context, replacement *Replacement, registration *Registration, at time.Time) error {
	registration.Key = RegistrationKey(registration.ProgramID, registration.StudentID)
	newItem, err := attributevalue.MarshalMap(registration)
	if err != nil {
		logging.Log.Errorf("REPLACEMENT: failed to marshal new registration: %v", err)
		return err
	}
	update, err := s.decideUpdate(replacement.ID, StatusApproved, at)
	if err != nil {
		return err
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: update},
			{Delete: &types.Delete{
				TableName:           &s.RegistrationsTable,
				Key:                 pkKey(RegistrationKey(replacement.ProgramID, replacement.OldStudentID)),
				ConditionExpression: aws.String("attribute_exists(PK)"),
			}},
			{Put: &types.Put{
				TableName:           &s.RegistrationsTable,
				Item:                newItem,
				ConditionExpression: aws.String("attribute_not_exists(PK)"),
			}},
		},
	})
	if err != nil {
		switch {
		case cancelledAt(err, 0), cancelledAt(err, 1):
			return ErrConditionFailed
		case cancelledAt(err, 2):
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("REPLACEMENT: swap for request %s failed: %v", replacement.ID, err)
		return err
	}
	logging.Log.Infof("REPLACEMENT: swapped %s -> %s in program %s", replacement.OldStudentID, replacement.NewStudentID, replacement.ProgramID)
	return nil
}

func (s *DynamoReplacementStorage) decideUpdate(id string, status ResultStatus, at time.Time) (*types.Update, error) {
	decidedAt, err := attributevalue.Marshal(at)
	if err != nil {
		return nil, err
	}
	return &types.Update{
		TableName:                &s.TableName,
		Key:                      pkKey(id),
		UpdateExpression:         aws.String("SET #status = :status, DecidedAt = :at"),
		ConditionExpression:      aws.String("#status = :pending"),
		ExpressionAttributeNames: statusName,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":pending": &types.AttributeValueMemberS{Value: string(StatusPending)},
			":at":      decidedAt,
		},
	}, nil
}
