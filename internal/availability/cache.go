package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// CachedOracle caches occupancy maps in Redis in front of another
// oracle. Lookups degrade to the inner oracle on any cache failure.
type CachedOracle struct {
	Next   Oracle
	Client *redis.Client
	TTL    time.Duration
}

// OccupancyMap implements Oracle.
func (o CachedOracle) OccupancyMap(ctx context.Context, propertyID int64, from, to time.Time) (map[string]Status, error) {
	key := occupancyKey(propertyID, from, to)

	if o.Client != nil {
		data, err := o.Client.Get(ctx, key).Bytes()
		if err == nil {
			var cached map[string]Status
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	out, err := o.Next.OccupancyMap(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}

	if o.Client != nil {
		if data, err := json.Marshal(out); err == nil {
			o.Client.Set(ctx, key, data, o.TTL)
		}
	}
	return out, nil
}

func occupancyKey(propertyID int64, from, to time.Time) string {
	return fmt.Sprintf("availability:%d:%s:%s", propertyID, from.Format(stay.DateFormat), to.Format(stay.DateFormat))
}
