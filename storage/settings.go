package storage

import (
	"context"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const registrationWindowKey = "registration_window"

type SettingsStorage interface {
	GetRegistrationWindow(ctx context.Context) (RegistrationWindow, error)
	PutRegistrationWindow(ctx context.Context, window RegistrationWindow) error
}

type DynamoSettingsStorage struct {
	Client    *dynamodb.Client
	TableName string
}

type windowItem struct {
	Key string `dynamodbav:"PK"`
	RegistrationWindow
}

// GetRegistrationWindow returns a zero (closed) window when none was stored.
func (s *DynamoSettingsStorage) GetRegistrationWindow(ctx context.Context) (RegistrationWindow, error) {
	item, err := getByKey[windowItem](ctx, s.Client, s.TableName, registrationWindowKey, "SETTINGS")
	if err != nil || item == nil {
		return RegistrationWindow{}, err
	}
	return item.RegistrationWindow, nil
}

func (s *DynamoSettingsStorage) PutRegistrationWindow(ctx context.Context, window RegistrationWindow) error {
	item, err := attributevalue.MarshalMap(&windowItem{Key: registrationWindowKey, RegistrationWindow: window})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to marshal registration window: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to store registration window: %v", err)
		return err
	}
	logging.Log.Infof("SETTINGS: registration window set to %s - %s", window.OpensAt, window.ClosesAt)
	return nil
}
