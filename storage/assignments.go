package storage

import (
	"context"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type AssignmentStorage interface {
	Get(ctx context.Context, programID, juryID string) (*Assignment, error)
	GetAll(ctx context.Context) ([]*Assignment, error)
	Create(ctx context.Context, assignment *Assignment) error
	Delete(ctx context.Context, programID, juryID string) error
}

type DynamoAssignmentStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoAssignmentStorage) Get(ctx context.Context, programID, juryID string) (*Assignment, error) {
	return getByKey[Assignment](ctx, s.Client, s.TableName, AssignmentKey(programID, juryID), "ASSIGNMENT")
}

func (s *DynamoAssignmentStorage) GetAll(ctx context.Context) ([]*Assignment, error) {
	return scanAll[Assignment](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "ASSIGNMENT")
}

func (s *DynamoAssignmentStorage) Create(ctx context.Context, assignment *Assignment) error {
	assignment.Key = AssignmentKey(assignment.ProgramID, assignment.JuryID)
	item, err := attributevalue.MarshalMap(assignment)
	if err != nil {
		logging.Log.Errorf("ASSIGNMENT: failed to marshal assignment: %v", err)
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
		logging.Log.Errorf("ASSIGNMENT: failed to create assignment: %v", err)
		return err
	}
	return nil
}

func (s *DynamoAssignmentStorage) Delete(ctx context.Context, programID, juryID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &s.TableName,
		Key:                 pkKey(AssignmentKey(programID, juryID)),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logging.Log.Errorf("ASSIGNMENT: failed to delete assignment %s/%s: %v", programID, juryID, err)
		return err
	}
	return nil
}
