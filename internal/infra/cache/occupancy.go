package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "availability:"
	// generation counters outlive any entry written under them
	generationTTL = 7 * 24 * time.Hour
)

type cachedOccupancy struct {
	ByZone           map[reservation.Zone]int `json:"byZone"`
	ReservationCount int                      `json:"reservationCount"`
}

// OccupancyCache keeps computed occupancy per date and turn in Redis. A nil
// client turns every operation into a no-op, and Redis failures are logged
// and otherwise ignored so reads always fall through to Postgres.
//
// Entries are keyed by a per-slot generation. Invalidate bumps the
// generation, so a fill computed before a write lands under a key no reader
// will look up again.
type OccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewOccupancyCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *OccupancyCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &OccupancyCache{client: client, ttl: ttl, logger: logger}
}

func Key(date calendar.Date, turn reservation.Turn, generation int64) string {
	return keyPrefix + date.String() + ":" + turn.String() + ":g" + strconv.FormatInt(generation, 10)
}

func GenerationKey(date calendar.Date, turn reservation.Turn) string {
	return keyPrefix + "gen:" + date.String() + ":" + turn.String()
}

// Get returns the cached occupancy and the generation it was looked up
// under. A generation of -1 means the counter could not be read and the
// caller must not fill.
func (c *OccupancyCache) Get(ctx context.Context, date calendar.Date, turn reservation.Turn) (reservation.Occupancy, int64, bool) {
	if c.client == nil {
		return reservation.Occupancy{}, -1, false
	}

	gen, err := c.client.Get(ctx, GenerationKey(date, turn)).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		gen = 0
	case err != nil:
		c.logger.Warn("availability cache generation read failed", "key", GenerationKey(date, turn), "error", err.Error())
		return reservation.Occupancy{}, -1, false
	}

	key := Key(date, turn, gen)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("availability cache read failed", "key", key, "error", err.Error())
		}
		return reservation.Occupancy{}, gen, false
	}

	var v cachedOccupancy
	if err := json.Unmarshal(raw, &v); err != nil {
		c.logger.Warn("availability cache entry corrupt", "key", key, "error", err.Error())
		return reservation.Occupancy{}, gen, false
	}
	return reservation.NewOccupancy(v.ByZone, v.ReservationCount), gen, true
}

// Set stores occ under the generation returned by the Get that preceded the
// database read.
func (c *OccupancyCache) Set(ctx context.Context, date calendar.Date, turn reservation.Turn, generation int64, occ reservation.Occupancy) {
	if c.client == nil || generation < 0 {
		return
	}

	raw, err := json.Marshal(cachedOccupancy{ByZone: occ.ByZone, ReservationCount: occ.ReservationCount})
	if err != nil {
		return
	}
	key := Key(date, turn, generation)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

// Invalidate runs after commit. A failed bump leaves a stale entry for at most the TTL.
func (c *OccupancyCache) Invalidate(ctx context.Context, date calendar.Date, turn reservation.Turn) {
	if c.client == nil {
		return
	}
	key := GenerationKey(date, turn)
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, generationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("availability cache invalidation failed", "key", key, "error", err.Error())
	}
}

// NewClient returns nil when addr is empty or the server does not answer a ping.
func NewClient(ctx context.Context, addr, password string, db int, logger *slog.Logger) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, availability cache disabled", "addr", addr, "error", err.Error())
		_ = client.Close()
		return nil
	}
	return client
}
