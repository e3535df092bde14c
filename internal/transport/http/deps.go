package http

import (
	"github.com/launchdeck/launchdeck/internal/infrastructure/dynamo"
	jwtinfra "github.com/launchdeck/launchdeck/internal/infrastructure/jwt"
	s3infra "github.com/launchdeck/launchdeck/internal/infrastructure/s3"
	"github.com/launchdeck/launchdeck/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProductRepo      *dynamo.ProductRepo
	UserRepo         *dynamo.UserRepo
	NotificationRepo *dynamo.NotificationRepo
	RankingRepo      *dynamo.RankingRepo
	S3Store          *s3infra.Store
	Push             sns.Publisher // nil when no topic is configured
	JWTProvider      *jwtinfra.Provider
}
