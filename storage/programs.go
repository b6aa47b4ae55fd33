package storage

import (
	"context"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type ProgramStorage interface {
	Get(ctx context.Context, id string) (*Program, error)
	GetAll(ctx context.Context) ([]*Program, error)
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	Delete(ctx context.Context, id string) error
}

type DynamoProgramStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoProgramStorage) Get(ctx context.Context, id string) (*Program, error) {
	return getByKey[Program](ctx, s.Client, s.TableName, id, "PROGRAM")
}

func (s *DynamoProgramStorage) GetAll(ctx context.Context) ([]*Program, error) {
	return scanAll[Program](ctx, s.Client, &dynamodb.ScanInput{TableName: &s.TableName}, "PROGRAM")
}

func (s *DynamoProgramStorage) Create(ctx context.Context, program *Program) error {
	item, err := attributevalue.MarshalMap(program)
	if err != nil {
		logging.Log.Errorf("PROGRAM: failed to marshal program: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			logging.Log.Warnf("PROGRAM: item with ID %s already exists", program.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("PROGRAM: failed to create program: %v", err)
		return err
	}
	return nil
}

func (s *DynamoProgramStorage) Update(ctx context.Context, program *Program) error {
	item, err := attributevalue.MarshalMap(program)
	if err != nil {
		logging.Log.Errorf("PROGRAM: failed to marshal updated program: %v", err)
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
		logging.Log.Errorf("PROGRAM: failed to update program: %v", err)
		return err
	}
	return nil
}

func (s *DynamoProgramStorage) Delete(ctx context.Context, id string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       pkKey(id),
	})
	if err != nil {
		logging.Log.Errorf("PROGRAM: failed to delete program with ID %s: %v", id, err)
		return err
	}
	logging.Log.Infof("PROGRAM: deleted program with ID %s", id)
	return nil
}
