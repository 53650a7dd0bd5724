package lookupstore

import (
	"context"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

const defaultTopLimit = 10

// ValkeyStore keeps lookup counters in a sorted set so every replica shares them.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "billboard"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementLookup(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	return s.client.Do(ctx, s.client.B().Zincrby().Key(s.lookupsKey()).Increment(1).Member(code).Build()).Error()
}

func (s *ValkeyStore) TopLookups(ctx context.Context, limit int) ([]billboard.Lookup, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.lookupsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	// AsZScores accepts both the RESP3 [member, score] tuples and the flat RESP2 reply with string scores.
	scores, err := resp.AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return lookupsFromScores(scores), nil
}

func (s *ValkeyStore) lookupsKey() string {
	return s.prefix + ":lookups"
}

func lookupsFromScores(scores []valkey.ZScore) []billboard.Lookup {
	out := make([]billboard.Lookup, 0, len(scores))
	for _, z := range scores {
		out = append(out, billboard.Lookup{Code: z.Member, Lookups: int64(z.Score)})
	}
	return out
}

var _ billboard.LookupStore = (*ValkeyStore)(nil)
