package redis

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"wallet-lifecycle-service/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	uniqueIDLength         = 18
	uniqueIDPrefix         = "W"
	uniqueIDMaxAttempts    = 3
	uniqueIDReservationTTL = 60 * time.Second
	uniqueIDAlphabet       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// UniqueIDGenerator implements ports.UniqueIDGenerator. Candidates combine a
// millisecond timestamp with random alphanumerics; each one is reserved in
// Redis with SET NX before being handed out, so two concurrent generations can
// never produce the same id within the reservation window.
type UniqueIDGenerator struct {
	client *goredis.Client
	clock  ports.Clock
	prefix string
}

// NewUniqueIDGenerator creates a new Redis-backed unique id generator.
func NewUniqueIDGenerator(client *goredis.Client, clock ports.Clock) *UniqueIDGenerator {
	return &UniqueIDGenerator{
		client: client,
		clock:  clock,
		prefix: "uniqueid:",
	}
}

// Generate mints a fresh 18-character identifier. After three failed
// reservation attempts it gives up and returns an error.
func (g *UniqueIDGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < uniqueIDMaxAttempts; attempt++ {
		candidate, err := g.candidate()
		if err != nil {
			return "", err
		}

		reserved, err := g.client.SetNX(ctx, g.prefix+candidate, 1, uniqueIDReservationTTL).Result()
		if err != nil {
			return "", fmt.Errorf("redis unique id reservation: %w", err)
		}
		if reserved {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unique id generation exhausted %d attempts", uniqueIDMaxAttempts)
}

// candidate builds prefix + millisecond timestamp, padded with random
// alphanumerics up to the fixed length.
func (g *UniqueIDGenerator) candidate() (string, error) {
	id := uniqueIDPrefix + strconv.FormatInt(g.clock.Now().UnixMilli(), 10)
	for len(id) < uniqueIDLength {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(uniqueIDAlphabet))))
		if err != nil {
			return "", fmt.Errorf("random suffix: %w", err)
		}
		id += string(uniqueIDAlphabet[n.Int64()])
	}
	return id[:uniqueIDLength], nil
}
