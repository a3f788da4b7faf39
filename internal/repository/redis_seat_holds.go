package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisSeatHoldRepository keeps advisory seat holds as per-seat TTL keys plus
// a set of held seat labels per showing. The set can outlive individual hold
// keys, so reads run a cleanup script that drops expired members.
type RedisSeatHoldRepository struct {
	client redis.UniversalClient
}

func NewRedisSeatHoldRepository(client redis.UniversalClient) *RedisSeatHoldRepository {
	return &RedisSeatHoldRepository{
		client: client,
	}
}

// Cleans up expired seat holds and returns the currently held seat labels.
var filterValidHeldSeats = redis.NewScript(`
	local setKey = KEYS[1]
	local showKey = ARGV[1]
	local cursor = "0"
	local batchSize = 100
	local expiredSeats = {}
	local heldSeats = {}

	repeat
		local result = redis.call("SSCAN", setKey, cursor, "COUNT", batchSize)
		cursor = result[1]
		local seatIds = result[2]

		for _, seatId in ipairs(seatIds) do
			local holdKey = "seat_hold:" .. showKey .. ":" .. seatId
			if redis.call("EXISTS", holdKey) == 0 then
				table.insert(expiredSeats, seatId)
			else
				table.insert(heldSeats, seatId)
			end
		end
	until cursor == "0"

	if #expiredSeats > 0 then
		redis.call("SREM", setKey, unpack(expiredSeats))
	end

	return heldSeats
`)

func showKey(showing domain.Showing) string {
	theater := strings.ToLower(strings.ReplaceAll(showing.Theater, " ", "_"))

	return fmt.Sprintf("%d:%s:%s:%s", showing.MovieID, theater, showing.Date, showing.ShowTime)
}

func holdKey(showing domain.Showing, seatID string) string {
	return fmt.Sprintf("seat_hold:%s:%s", showKey(showing), seatID)
}

func holdSetKey(showing domain.Showing) string {
	return fmt.Sprintf("seat_hold_set:%s", showKey(showing))
}

func (r *RedisSeatHoldRepository) HoldSeats(
	ctx context.Context,
	showing domain.Showing,
	seats []string,
	token string,
	ttl time.Duration) error {

	acquired := make([]string, 0, len(seats))

	for _, seatID := range seats {
		ok, err := r.client.SetNX(ctx, holdKey(showing, seatID), token, ttl).Result()
		if err != nil {
			r.releaseAcquired(ctx, showing, acquired)
			return err
		}

		if !ok {
			r.releaseAcquired(ctx, showing, acquired)
			return fmt.Errorf("%w: %s", domain.ErrSeatAlreadyHeld, seatID)
		}

		acquired = append(acquired, seatID)
	}

	err := r.client.SAdd(ctx, holdSetKey(showing), toMembers(seats)...).Err()
	if err != nil {
		r.releaseAcquired(ctx, showing, acquired)
		return err
	}

	// The set itself expires after the longest possible hold, so abandoned
	// showings don't accumulate.
	return r.client.Expire(ctx, holdSetKey(showing), 24*time.Hour).Err()
}

func (r *RedisSeatHoldRepository) releaseAcquired(ctx context.Context, showing domain.Showing, seats []string) {
	for _, seatID := range seats {
		r.client.Del(ctx, holdKey(showing, seatID))
	}
}

func (r *RedisSeatHoldRepository) HeldSeats(ctx context.Context, showing domain.Showing) ([]string, error) {
	cmd := filterValidHeldSeats.Run(ctx, r.client, []string{holdSetKey(showing)}, showKey(showing))

	heldSeats, err := cmd.StringSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to run filterValidHeldSeats script: %w", err)
	}

	return heldSeats, nil
}

func (r *RedisSeatHoldRepository) ReleaseSeats(
	ctx context.Context,
	showing domain.Showing,
	seats []string,
	token string) error {

	for _, seatID := range seats {
		owner, err := r.client.Get(ctx, holdKey(showing, seatID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}

			return err
		}

		if owner != token {
			continue
		}

		err = r.client.Del(ctx, holdKey(showing, seatID)).Err()
		if err != nil {
			return err
		}

		err = r.client.SRem(ctx, holdSetKey(showing), seatID).Err()
		if err != nil {
			return err
		}
	}

	return nil
}

func toMembers(seats []string) []any {
	members := make([]any, len(seats))
	for i, s := range seats {
		members[i] = s
	}

	return members
}
