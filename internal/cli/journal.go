package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/swell/internal/logging"
	"github.com/aretw0/swell/pkg/adapters/file"
	"github.com/aretw0/swell/pkg/adapters/memory"
	"github.com/aretw0/swell/pkg/adapters/redis"
	"github.com/aretw0/swell/pkg/ports"
)

// DefaultRedisAddr is assumed when a redis journal is requested without an address.
const DefaultRedisAddr = "localhost:6379"

// JournalConfig selects a journal backend. The zero value means in-memory.
// A non-empty RedisAddr wins over Path, matching flag precedence in cmd/swell.
type JournalConfig struct {
	RedisAddr string // redis backend when non-empty
	Path      string // file backend when non-empty
}

// Kind names the backend the config resolves to.
func (c JournalConfig) Kind() string {
	switch {
	case c.RedisAddr != "":
		return "redis"
	case c.Path != "":
		return "file"
	default:
		return "memory"
	}
}

// OpenJournal picks the journal backend from standard CLI conventions.
// The returned func releases the backend and is safe to call on every path.
func OpenJournal(kind string, cfg JournalConfig, logger *slog.Logger) (ports.Journal, func(), error) {
	switch kind {
	case "", "memory":
		return memory.NewJournal(), func() {}, nil

	case "redis":
		addr := cfg.RedisAddr
		if addr == "" {
			addr = DefaultRedisAddr
		}
		j := redis.New(addr, "", 0, redis.WithLogger(logging.ForComponent(logger, "journal")))
		return j, func() { _ = j.Close() }, nil

	case "file":
		j, err := file.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return j, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown journal backend %q (supported: memory, redis, file)", kind)
	}
}
