package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"projectmatch_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SnapshotStore persists the whole AppState as one blob. Saves happen after
// every successful mutation; loads happen once at startup.
type SnapshotStore interface {
	Load(ctx context.Context) (*models.AppState, error)
	Save(ctx context.Context, state *models.AppState) error
}

// NewSnapshotStoreFromEnv picks the backend from STATE_BACKEND: "dynamo",
// "s3", or the default file store writing STATE_FILE (state.json).
func NewSnapshotStoreFromEnv() SnapshotStore {
	switch os.Getenv("STATE_BACKEND") {
	case "dynamo":
		table := os.Getenv("STATE_TABLE_NAME")
		if table == "" {
			table = "ProjectMatchState"
		}
		return &DynamoSnapshotStore{
			Dynamo: &DynamoService{Client: InitializeDynamoDBClient()},
			Table:  table,
		}
	case "s3":
		key := os.Getenv("STATE_S3_KEY")
		if key == "" {
			key = "snapshots/state.json"
		}
		return &S3SnapshotStore{
			Client: InitializeS3Client(),
			Bucket: os.Getenv("S3_BUCKET_NAME"),
			Key:    key,
		}
	default:
		path := os.Getenv("STATE_FILE")
		if path == "" {
			path = "state.json"
		}
		return &FileSnapshotStore{Path: path}
	}
}

// FileSnapshotStore keeps the snapshot in a local JSON file.
type FileSnapshotStore struct {
	Path string
}

func (fs *FileSnapshotStore) Load(_ context.Context) (*models.AppState, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file '%s': %w", fs.Path, err)
	}
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state file '%s': %w", fs.Path, err)
	}
	return &state, nil
}

func (fs *FileSnapshotStore) Save(_ context.Context, state *models.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file '%s': %w", fs.Path, err)
	}
	return nil
}

const snapshotItemID = "current"

type snapshotItem struct {
	StateID  string          `dynamodbav:"stateId"`
	Snapshot models.AppState `dynamodbav:"snapshot"`
}

// DynamoSnapshotStore keeps the snapshot as a single marshaled item.
type DynamoSnapshotStore struct {
	Dynamo *DynamoService
	Table  string
}

func (ds *DynamoSnapshotStore) Load(ctx context.Context) (*models.AppState, error) {
	key := map[string]types.AttributeValue{
		"stateId": &types.AttributeValueMemberS{Value: snapshotItemID},
	}
	item, err := ds.Dynamo.GetItem(ctx, ds.Table, key)
	if err != nil {
		return nil, err
	}
	var record snapshotItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state snapshot: %w", err)
	}
	return &record.Snapshot, nil
}

func (ds *DynamoSnapshotStore) Save(ctx context.Context, state *models.AppState) error {
	return ds.Dynamo.PutItem(ctx, ds.Table, snapshotItem{
		StateID:  snapshotItemID,
		Snapshot: *state,
	})
}

// S3SnapshotStore keeps the snapshot as one JSON object.
type S3SnapshotStore struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (ss *S3SnapshotStore) Load(ctx context.Context) (*models.AppState, error) {
	output, err := ss.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ss.Bucket),
		Key:    aws.String(ss.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get state object '%s': %w", ss.Key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read state object '%s': %w", ss.Key, err)
	}
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state object '%s': %w", ss.Key, err)
	}
	return &state, nil
}

func (ss *S3SnapshotStore) Save(ctx context.Context, state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = ss.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ss.Bucket),
		Key:         aws.String(ss.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put state object '%s': %w", ss.Key, err)
	}
	return nil
}
