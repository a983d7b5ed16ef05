package storage

import (
	"context"

	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ContentDraftStorage interface {
	Create(ctx context.Context, draft *ContentDraft) error
	GetByProfile(ctx context.Context, profileID string) ([]*ContentDraft, error)
	DeleteAll(ctx context.Context) error
}

type DynamoContentDraftStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoContentDraftStorage) Create(ctx context.Context, draft *ContentDraft) error {
	item, err := attributevalue.MarshalMap(draft)
	if err != nil {
		logging.Log.Errorf("DRAFT: failed to marshal draft: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("DRAFT: failed to create draft: %v", err)
		return err
	}
	return nil
}

func (s *DynamoContentDraftStorage) GetByProfile(ctx context.Context, profileID string) ([]*ContentDraft, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :profileId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":profileId": &types.AttributeValueMemberS{Value: profileID},
		},
	}

	output, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("DRAFT: failed to query drafts for profile %s: %v", profileID, err)
		return nil, err
	}

	var drafts []*ContentDraft
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &drafts); err != nil {
		logging.Log.Errorf("DRAFT: failed to unmarshal drafts for profile %s: %v", profileID, err)
		return nil, err
	}
	return drafts, nil
}

func (s *DynamoContentDraftStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK, SK"),
		})
		if err != nil {
			logging.Log.Errorf("DRAFT: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.TableName: writeRequests[i:end],
				},
			})
			if err != nil {
				logging.Log.Errorf("DRAFT: batch delete failed: %v", err)
				return err
			}
			logging.Log.Infof("DRAFT: deleted batch of %d items", end-i)
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
