package dynamo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/launchdeck/launchdeck/internal/domain"
)

// ProductRepo provides typed DynamoDB operations for the products table.
type ProductRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProductRepo(client *dynamodb.Client, tableName string) *ProductRepo {
	return &ProductRepo{client: client, tableName: tableName}
}

func (r *ProductRepo) Get(ctx context.Context, productID string) (*domain.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("product_id", productID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	var p domain.Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// launchWindowBounds converts the half-open [start, end) window to the
// inclusive epoch-second range the launch_date sort key is stored in.
// Sub-second launch instants truncate to their containing second, so every
// instant in [start, end) lands inside the returned bounds.
func launchWindowBounds(start, end time.Time) (int64, int64) {
	return start.Unix(), end.Unix() - 1
}

// QueryLaunchedBetween returns published products whose launch date falls in
// the half-open window [start, end), ordered by launch date ascending and
// upvote count descending, capped at limit.
//
// The status-launch_date GSI satisfies the range filter and the primary
// order. launch_date is a numeric epoch-second key, so index order is
// chronological and the limit cut is applied in the query; the upvote
// tiebreak within an instant is applied client-side.
func (r *ProductRepo) QueryLaunchedBetween(ctx context.Context, start, end time.Time, limit int32) ([]domain.Product, error) {
	lo, hi := launchWindowBounds(start, end)
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("status-launch_date-index"),
		KeyConditionExpression: aws.String("#s = :published AND #ld BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#s":  "status",
			"#ld": "launch_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":published": &types.AttributeValueMemberS{Value: domain.ProductPublished},
			":start":     &types.AttributeValueMemberN{Value: strconv.FormatInt(lo, 10)},
			":end":       &types.AttributeValueMemberN{Value: strconv.FormatInt(hi, 10)},
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &products); err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		var li, lj time.Time
		if products[i].LaunchDate != nil {
			li = *products[i].LaunchDate
		}
		if products[j].LaunchDate != nil {
			lj = *products[j].LaunchDate
		}
		if !li.Equal(lj) {
			return li.Before(lj)
		}
		return products[i].UpvoteCount > products[j].UpvoteCount
	})
	return products, nil
}

func (r *ProductRepo) Update(ctx context.Context, productID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("product_id", productID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
