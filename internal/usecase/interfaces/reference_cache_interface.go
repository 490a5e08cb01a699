package interfaces

import (
	"context"
	"time"
)

// IReferenceCache is the injectable key-value cache backing slow-changing
// reference data (UF and municipality lists). Implementations: redis for
// deployments, in-memory for local runs and tests.

type IReferenceCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
