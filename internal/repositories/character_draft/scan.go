package characterdraft

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	redisclient "github.com/KirkDiggler/echosheet/internal/redis"
)

// ScanResult reports the draft keys a scan visited
type ScanResult struct {
	Checked int
	// Corrupt holds keys whose value is not a readable draft
	Corrupt []string
}

// ScanCorrupt walks every stored draft and reports the keys that no longer
// decode. Session index keys are skipped.
func ScanCorrupt(ctx context.Context, client redisclient.Client) (*ScanResult, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	result := &ScanResult{}
	iter := client.Scan(ctx, 0, draftKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, sessionKeyPrefix) {
			continue
		}
		result.Checked++

		data, err := client.Get(ctx, key).Result()
		if err == redisclient.Nil {
			// expired between scan and read
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var draft echosheet.CharacterDraft
		if err := json.Unmarshal([]byte(data), &draft); err != nil || draft.ID == "" {
			result.Corrupt = append(result.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan drafts")
	}

	return result, nil
}

// DeleteKeys removes the given keys, returning how many existed
func DeleteKeys(ctx context.Context, client redisclient.Client, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete %d keys", len(keys))
	}
	return n, nil
}
