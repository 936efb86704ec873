package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/zopudigital/content-service/internal/domain"
)

// QueryExecutor runs a parameterized CMS query and decodes the result into
// the given tagged struct. Implemented by cms.Client.
type QueryExecutor interface {
	Query(ctx context.Context, query string, params map[string]any, result any) error
}

type LeadStore interface {
	Insert(ctx context.Context, lead *domain.Lead) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LeadPublisher interface {
	Publish(ctx context.Context, lead *domain.Lead) error
	Close() error
}
