package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// setupLocalstack creates a fresh set of tables on the localstack instance
// named by LOCALSTACK_ENDPOINT, e.g. http://localhost:4566.
func setupLocalstack(t *testing.T) *Stores {
	t.Helper()
	endpoint := os.Getenv("LOCALSTACK_ENDPOINT")
	if endpoint == "" {
		t.Skip("LOCALSTACK_ENDPOINT not set")
	}
	logging.Log = logrus.New()

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "test", SecretAccessKey: "test"}, nil
		})),
	)
	require.NoError(t, err)
	db := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	suffix := fmt.Sprintf("-%d", time.Now().UnixNano())
	tables := TableNames{
		Programs:      "Programs" + suffix,
		Teams:         "Teams" + suffix,
		Students:      "Students" + suffix,
		Registrations: "Registrations" + suffix,
		Results:       "Results" + suffix,
		Publications:  "Publications" + suffix,
		Replacements:  "Replacements" + suffix,
		Assignments:   "Assignments" + suffix,
		Settings:      "Settings" + suffix,
	}
	for _, name := range []string{
		tables.Programs, tables.Teams, tables.Students, tables.Registrations, tables.Results,
		tables.Publications, tables.Replacements, tables.Assignments, tables.Settings,
	} {
		createTable(t, db, name, name == tables.Results)
	}

	return NewDynamoStores(db, tables)
}

func createTable(t *testing.T, db *dynamodb.Client, name string, programIndex bool) {
	t.Helper()
	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
		},
	}
	if programIndex {
		input.AttributeDefinitions = append(input.AttributeDefinitions,
			types.AttributeDefinition{AttributeName: aws.String("ProgramID"), AttributeType: types.ScalarAttributeTypeS})
		input.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(resultProgramIndex),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("ProgramID"), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := db.CreateTable(context.TODO(), input)
	require.NoError(t, err, "create table %s", name)

	t.Cleanup(func() {
		if _, err := db.DeleteTable(context.TODO(), &dynamodb.DeleteTableInput{TableName: aws.String(name)}); err != nil {
			t.Logf("failed to delete table %s: %v", name, err)
		}
	})
}

func TestDynamoResultStorage(t *testing.T) {
	stores := setupLocalstack(t)
	runResultContract(t, stores.Results)
}

func TestDynamoResultsByProgramFollowsPages(t *testing.T) {
	stores := setupLocalstack(t)
	results := stores.Results.(*DynamoResultStorage)
	results.PageSize = 1

	ctx := context.Background()
	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, results.Create(ctx, &Result{ID: id, ProgramID: "essay", Status: StatusRejected}))
	}
	require.NoError(t, results.Create(ctx, &Result{ID: "r4", ProgramID: "poetry", Status: StatusPending}))

	got, err := results.GetByProgram(ctx, "essay")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestDynamoReplacementSwap(t *testing.T) {
	stores := setupLocalstack(t)
	runSwapContract(t, stores)
}
