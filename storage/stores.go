package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Stores bundles every collection the service reads and writes.
type Stores struct {
	Programs      ProgramStorage
	Teams         TeamStorage
	Students      StudentStorage
	Registrations RegistrationStorage
	Results       ResultStorage
	Replacements  ReplacementStorage
	Assignments   AssignmentStorage
	Settings      SettingsStorage
}

type TableNames struct {
	Programs      string
	Teams         string
	Students      string
	Registrations string
	Results       string
	Publications  string
	Replacements  string
	Assignments   string
	Settings      string
}

func NewDynamoStores(client *dynamodb.Client, tables TableNames) *Stores {
	return &Stores{
		Programs:      &DynamoProgramStorage{Client: client, TableName: tables.Programs},
		Teams:         &DynamoTeamStorage{Client: client, TableName: tables.Teams},
		Students:      &DynamoStudentStorage{Client: client, TableName: tables.Students},
		Registrations: &DynamoRegistrationStorage{Client: client, TableName: tables.Registrations},
		Results: &DynamoResultStorage{
			Client:            client,
			TableName:         tables.Results,
			PublicationsTable: tables.Publications,
		},
		Replacements: &DynamoReplacementStorage{
			Client:             client,
			TableName:          tables.Replacements,
			RegistrationsTable: tables.Registrations,
		},
		Assignments: &DynamoAssignmentStorage{Client: client, TableName: tables.Assignments},
		Settings:    &DynamoSettingsStorage{Client: client, TableName: tables.Settings},
	}
}

// scanAll follows LastEvaluatedKey until the table is exhausted.
func scanAll[T any](ctx context.Context, client *dynamodb.Client, input *dynamodb.ScanInput, prefix string) ([]*T, error) {
	var items []*T
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		input.ExclusiveStartKey = lastEvaluatedKey
		out, err := client.Scan(ctx, input)
		if err != nil {
			logging.Log.Errorf("%s: scan failed: %v", prefix, err)
			return nil, err
		}

		var page []*T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("%s: failed to unmarshal list: %v", prefix, err)
			return nil, err
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return items, nil
}

// queryAll pages through every result of a query.
func queryAll[T any](ctx context.Context, client *dynamodb.Client, input *dynamodb.QueryInput, prefix string) ([]*T, error) {
	var items []*T
	paginator := dynamodb.NewQueryPaginator(client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			logging.Log.Errorf("%s: query on %s failed: %v", prefix, aws.ToString(input.TableName), err)
			return nil, err
		}

		var page []*T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("%s: failed to unmarshal query page: %v", prefix, err)
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func getByKey[T any](ctx context.Context, client *dynamodb.Client, table, pk, prefix string) (*T, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": pk})
	if err != nil {
		logging.Log.Errorf("%s: failed to marshal key for ID %s: %v", prefix, pk, err)
		return nil, err
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &table,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("%s: GetItem for ID %s failed: %v", prefix, pk, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("%s: failed to unmarshal item %s: %v", prefix, pk, err)
		return nil, err
	}
	return &item, nil
}

func pkKey(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
	}
}

func isConditionFailed(err error) bool {
	var cce *types.ConditionalCheckFailedException
	return errors.As(err, &cce)
}

// cancelledAt reports whether the transaction was cancelled because the
// condition on item i failed.
func cancelledAt(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if i >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[i].Code
	return code != nil && *code == "ConditionalCheckFailed"
}
