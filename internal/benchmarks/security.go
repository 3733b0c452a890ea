package benchmarks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// SecurityResult reports cryptographic hashing throughput.
type SecurityResult struct {
	PayloadKB      int     `json:"payload_kb"`
	Rounds         int     `json:"rounds"`
	HashRateMBs    float64 `json:"hash_rate_mb_s"`
	Digest         string  `json:"digest"`
	DurationMillis float64 `json:"duration_ms"`
}

// Security returns a work function that measures SHA-256 throughput by
// chain-hashing a fixed payload: each round hashes the previous digest
// concatenated with the payload, so rounds cannot be reordered or skipped.
func Security(cfg SecurityConfig) registry.WorkFunc {
	return func(ctx context.Context) (interface{}, error) {
		payload := make([]byte, cfg.PayloadKB*1024)
		rng := rand.New(rand.NewSource(42))
		rng.Read(payload)

		digest := sha256.Sum256(payload)
		start := time.Now()

		for round := 0; round < cfg.Rounds; round++ {
			if round%32 == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
			}

			h := sha256.New()
			h.Write(digest[:])
			h.Write(payload)
			h.Sum(digest[:0])
		}

		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Microsecond
		}

		hashedMB := float64(cfg.Rounds) * float64(len(payload)) / (1 << 20)

		return SecurityResult{
			PayloadKB:      cfg.PayloadKB,
			Rounds:         cfg.Rounds,
			HashRateMBs:    utils.Round2(hashedMB / elapsed.Seconds()),
			Digest:         hex.EncodeToString(digest[:]),
			DurationMillis: utils.Round2(float64(elapsed.Microseconds()) / 1000),
		}, nil
	}
}
