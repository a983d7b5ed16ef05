package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type CampaignProfileStorage interface {
	Get(ctx context.Context, id string) (*CampaignProfile, error)
	GetAll(ctx context.Context) ([]*CampaignProfile, error)
	Create(ctx context.Context, profile *CampaignProfile) error
	Update(ctx context.Context, profile *CampaignProfile) error
	Delete(ctx context.Context, id string) error
}

type DynamoCampaignProfileStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoCampaignProfileStorage) Get(ctx context.Context, id string) (*CampaignProfile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal key for %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrProfileNotFound
	}

	var profile CampaignProfile
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		logging.Log.Errorf("PROFILE: failed to unmarshal profile: %v", err)
		return nil, err
	}
	return &profile, nil
}

func (s *DynamoCampaignProfileStorage) GetAll(ctx context.Context) ([]*CampaignProfile, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: scan failed: %v", err)
		return nil, err
	}

	var profiles []*CampaignProfile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &profiles); err != nil {
		logging.Log.Errorf("PROFILE: failed to unmarshal profile list: %v", err)
		return nil, err
	}
	return profiles, nil
}

func (s *DynamoCampaignProfileStorage) Create(ctx context.Context, profile *CampaignProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	profile.UpdatedAt = profile.CreatedAt

	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal profile: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("PROFILE: profile with ID %s already exists", profile.ID)
			return ErrProfileAlreadyExists
		}
		logging.Log.Errorf("PROFILE: failed to create profile: %v", err)
		return err
	}
	return nil
}

func (s *DynamoCampaignProfileStorage) Update(ctx context.Context, profile *CampaignProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal updated profile: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to update profile %s: %v", profile.ID, err)
		return err
	}
	return nil
}

func (s *DynamoCampaignProfileStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal delete key for %s: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to delete profile %s: %v", id, err)
		return err
	}
	logging.Log.Infof("PROFILE: deleted profile %s", id)
	return nil
}
