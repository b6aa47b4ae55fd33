package storage

import (
	"context"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type RegistrationStorage interface {
	Get(ctx context.Context, programID, studentID string) (*Registration, error)
	GetAll(ctx context.Context) ([]*Registration, error)
	GetByProgram(ctx context.Context, programID string) ([]*Registration, error)
	Create(ctx context.Context, registration *Registration) error
	Delete(ctx context.Context, programID, studentID string) error
}

type DynamoRegistrationStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoRegistrationStorage) Get(ctx context.Context, programID, studentID string) (*Registration, error) {
	return getByKey[Registration](ctx, s.Client, s.TableName, RegistrationKey(programID, studentID), "REGISTRATION")
}

func (s *DynamoRegistrationStorage) GetAll(ctx context.Context) ([]*Registration, error) {
	return scanAll[Registration](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "REGISTRATION")
}

// GetByProgram uses a consistent filtered scan rather than an index so that
// guard checks observe the latest committed registrations.
func (s *DynamoRegistrationStorage) GetByProgram(ctx context.Context, programID string) ([]*Registration, error) {
	return scanAll[Registration](ctx, s.Client, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("ProgramID = :program"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":program": &types.AttributeValueMemberS{Value: programID},
		},
	}, "REGISTRATION")
}

func (s *DynamoRegistrationStorage) Create(ctx context.Context, registration *Registration) error {
	registration.Key = RegistrationKey(registration.ProgramID, registration.StudentID)
	item, err := attributevalue.MarshalMap(registration)
	if err != nil {
		logging.Log.Errorf("REGISTRATION: failed to marshal registration: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			logging.Log.Warnf("REGISTRATION: student %s already registered for program %s", registration.StudentID, registration.ProgramID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("REGISTRATION: failed to create registration: %v", err)
		return err
	}
	return nil
}

func (s *DynamoRegistrationStorage) Delete(ctx context.Context, programID, studentID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &s.TableName,
		Key:                 pkKey(RegistrationKey(programID, studentID)),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logging.Log.Errorf("REGISTRATION: failed to delete registration %s/%s: %v", programID, studentID, err)
		return err
	}
	logging.Log.Infof("REGISTRATION: deleted registration %s/%s", programID, studentID)
	return nil
}
