package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/launchdeck/launchdeck/internal/domain"
)

// RankingRepo provides typed DynamoDB operations for the daily_rankings table.
type RankingRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRankingRepo(client *dynamodb.Client, tableName string) *RankingRepo {
	return &RankingRepo{client: client, tableName: tableName}
}

// UpsertMerge writes the snapshot under its date key. UpdateItem creates the
// document when absent and overwrites the listed fields when present, so the
// document identity is stable and rebuilding a date is idempotent.
func (r *RankingRepo) UpsertMerge(ctx context.Context, snap *domain.RankingSnapshot) error {
	ue, err := buildUpdateExpr(map[string]interface{}{
		"date":           snap.Date,
		"generated_at":   snap.GeneratedAt,
		"period":         snap.Period,
		"top_products":   snap.TopProducts,
		"total_products": snap.TotalProducts,
	})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("date_id", snap.DateID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *RankingRepo) Get(ctx context.Context, dateID string) (*domain.RankingSnapshot, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("date_id", dateID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("ranking %s: %w", dateID, domain.ErrNotFound)
	}
	var s domain.RankingSnapshot
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	s.DateID = dateID
	return &s, nil
}
