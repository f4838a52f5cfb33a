package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-scheduler-api/core/constants"
	"go-scheduler-api/core/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HostLocker serializes reservation work per host. The unit of serialization
// is one host's timeslot range: two reserve calls for the same host never
// interleave between the free-check and the mark-reserved step.
type HostLocker interface {
	Lock(ctx context.Context, hostID uuid.UUID) (unlock func(), err error)
}

// ---------------------------------------------------------------------------
// Process-local locker

type localHostLocker struct {
	locks sync.Map // hostID -> *sync.Mutex
}

// NewLocalHostLocker returns a locker scoped to this process. The default
// when redis is not configured.
func NewLocalHostLocker() HostLocker {
	return &localHostLocker{}
}

func (l *localHostLocker) Lock(ctx context.Context, hostID uuid.UUID) (func(), error) {
	v, _ := l.locks.LoadOrStore(hostID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock, nil
}

// ---------------------------------------------------------------------------
// Redis locker

// unlock deletes the key only when it still holds our token, so an expired
// lock taken over by another process is never released by us.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisHostLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisHostLocker returns a locker backed by redis SET NX, usable across
// processes sharing the same timeslot store.
func NewRedisHostLocker(client *redis.Client) HostLocker {
	return &redisHostLocker{
		client: client,
		ttl:    time.Duration(constants.DefaultHostLockTTLSeconds) * time.Second,
	}
}

func (l *redisHostLocker) Lock(ctx context.Context, hostID uuid.UUID) (func(), error) {
	key := fmt.Sprintf("hostlock:%s", hostID)
	token := utils.GenerateID()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire host lock: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	unlock := func() {
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = unlockScript.Run(relCtx, l.client, []string{key}, token).Err()
	}
	return unlock, nil
}
