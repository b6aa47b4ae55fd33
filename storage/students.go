package storage

import (
	"context"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type StudentStorage interface {
	Get(ctx context.Context, id string) (*Student, error)
	GetAll(ctx context.Context) ([]*Student, error)
	Create(ctx context.Context, student *Student) error
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id string) error
}

type DynamoStudentStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoStudentStorage) Get(ctx context.Context, id string) (*Student, error) {
	return getByKey[Student](ctx, s.Client, s.TableName, id, "STUDENT")
}

func (s *DynamoStudentStorage) GetAll(ctx context.Context) ([]*Student, error) {
	return scanAll[Student](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "STUDENT")
}

func (s *DynamoStudentStorage) Create(ctx context.Context, student *Student) error {
	item, err := attributevalue.MarshalMap(student)
	if err != nil {
		logging.Log.Errorf("STUDENT: failed to marshal student: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			logging.Log.Warnf("STUDENT: item with ID %s already exists", student.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("STUDENT: failed to create student: %v", err)
		return err
	}
	return nil
}

func (s *DynamoStudentStorage) Update(ctx context.Context, student *Student) error {
	item, err := attributevalue.MarshalMap(student)
	if err != nil {
		logging.Log.Errorf("STUDENT: failed to marshal updated student: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logging.Log.Errorf("STUDENT: failed to update student: %v", err)
		return err
	}
	return nil
}

func (s *DynamoStudentStorage) Delete(ctx context.Context, id string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       pkKey(id),
	})
	if err != nil {
		logging.Log.Errorf("STUDENT: failed to delete student with ID %s: %v", id, err)
		return err
	}
	logging.Log.Infof("STUDENT: deleted student with ID %s", id)
	return nil
}
