package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the best-effort page cache in front of the ranking engine.
// Implementations must degrade to misses when the backing store is down.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func matchCacheKey(userID uuid.UUID, limit, offset int, minScore float64) string {
	return fmt.Sprintf("match:%s:%d:%d:%g", userID, limit, offset, minScore)
}

func matchCacheUserPattern(userID uuid.UUID) string {
	return fmt.Sprintf("match:%s:*", userID)
}
