package signstats

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

// ValkeyStore keeps one sorted set per stat kind, scored by hit count.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "astro"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, kind string, sign astro.ZodiacSign) error {
	if kind == "" || !sign.Valid() {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.signsKey(kind)).Increment(1).Member(sign.String()).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Top(ctx context.Context, kind string, limit int) ([]astro.SignCount, error) {
	if limit <= 0 {
		limit = 12
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.signsKey(kind)).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]astro.SignCount, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		sign, parseErr := astro.ParseSign(member)
		if parseErr != nil {
			continue
		}
		out = append(out, astro.SignCount{Sign: sign, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) signsKey(kind string) string {
	return fmt.Sprintf("%s:signs:%s", s.prefix, kind)
}

var _ astro.StatsStore = (*ValkeyStore)(nil)
