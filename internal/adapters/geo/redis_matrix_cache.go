package geo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tsp-route-service/internal/domain"
	"tsp-route-service/internal/ports"
)

// CachedMatrixProvider decorates a MatrixProvider with a Redis cache.
//
// Matrices are keyed by a digest of the ordered coordinate list, so the
// index↔place correspondence of a cached matrix always matches the
// request that produced it. Cache failures fall through to the inner
// provider: a cold or unreachable cache degrades latency, never
// correctness.
type CachedMatrixProvider struct {
	inner  ports.MatrixProvider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedMatrixProvider(inner ports.MatrixProvider, client *redis.Client, ttl time.Duration) *CachedMatrixProvider {
	return &CachedMatrixProvider{inner: inner, client: client, ttl: ttl}
}

func (c *CachedMatrixProvider) Matrix(ctx context.Context, places []domain.Place) (domain.DistanceMatrix, error) {
	key := matrixKey(places)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var matrix domain.DistanceMatrix
		if jsonErr := json.Unmarshal(payload, &matrix); jsonErr == nil && matrix.Len() == len(places) {
			return matrix, nil
		}
		log.Printf("matrix cache: discarding malformed entry key=%s", key)
	} else if err != redis.Nil {
		log.Printf("matrix cache: get failed key=%s err=%v", key, err)
	}

	matrix, err := c.inner.Matrix(ctx, places)
	if err != nil {
		return nil, err
	}

	payload, err = json.Marshal(matrix)
	if err != nil {
		return matrix, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("matrix cache: set failed key=%s err=%v", key, err)
	}

	return matrix, nil
}

// matrixKey digests the ordered coordinate list. Place ids are excluded:
// two requests with identical geometry share one matrix.
func matrixKey(places []domain.Place) string {
	h := sha256.New()
	for _, p := range places {
		fmt.Fprintf(h, "%.7f,%.7f;", p.Coordinates.Lat, p.Coordinates.Lon)
	}
	return "matrix:" + hex.EncodeToString(h.Sum(nil))
}
