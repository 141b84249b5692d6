// Package repository implements typed CRUD over the three board collections.
// Each repository gets its Store injected; ids come from uuid so rapid
// successive creates can never collide.
package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/errorz"
)

func newID() string {
	return uuid.NewString()
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// decode parses a collection blob. A corrupt blob is logged and treated as an
// empty collection so a damaged store degrades to an empty board instead of
// taking every read path down.
func decode[T any](log *zap.Logger, name string, data []byte) []T {
	if len(data) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn("corrupt collection treated as empty",
			zap.String("collection", name), zap.Error(err))
		return nil
	}
	return out
}

func encode[T any](name string, records []T) ([]byte, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errorz.Storagef("encode collection %q: %v", name, err)
	}
	return data, nil
}
