package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRedis counts increments in memory keyed like the real window keys.
type fakeRedis struct {
	counts map[string]int
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: make(map[string]int), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedis) Increment(ctx context.Context, key string) error     { return nil }
func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func (f *fakeRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	f.counts[key]++
	if f.counts[key] == 1 {
		f.ttls[key] = ttl
	}
	return f.counts[key], nil
}

func TestApplyResourceLimiter_AllowsUpToQuota(t *testing.T) {
	redis := newFakeRedis()
	limiter := NewResourceLimiter(redis, zap.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	input := &ApplyResourceLimiterInput{
		ResourceName:      "patient@example.com",
		LimiterGroupName:  "booking",
		WindowDurationSec: 60,
		MaxQuota:          3,
		NowUTC:            now,
	}

	for i := 0; i < 3; i++ {
		out, err := limiter.ApplyResourceLimiter(context.Background(), input)
		assert.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(context.Background(), input)
	assert.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Greater(t, out.RetryAfterSecs, 0)
	assert.LessOrEqual(t, out.RetryAfterSecs, 61)
}

func TestApplyResourceLimiter_NewWindowResetsQuota(t *testing.T) {
	redis := newFakeRedis()
	limiter := NewResourceLimiter(redis, zap.NewNop())

	firstWindow := time.Date(2026, 9, 1, 12, 0, 30, 0, time.UTC)
	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:      "patient@example.com",
			LimiterGroupName:  "booking",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            firstWindow,
		})
		assert.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	nextWindow := firstWindow.Add(60 * time.Second)
	out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:      "patient@example.com",
		LimiterGroupName:  "booking",
		WindowDurationSec: 60,
		MaxQuota:          2,
		NowUTC:            nextWindow,
	})
	assert.NoError(t, err)
	assert.True(t, out.Allowed)
	assert.Len(t, redis.counts, 2)
}

func TestApplyResourceLimiter_ResourcesAreIndependent(t *testing.T) {
	redis := newFakeRedis()
	limiter := NewResourceLimiter(redis, zap.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	first, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:      "a@example.com",
		LimiterGroupName:  "booking",
		WindowDurationSec: 60,
		MaxQuota:          1,
		NowUTC:            now,
	})
	assert.NoError(t, err)
	assert.True(t, first.Allowed)

	other, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:      "b@example.com",
		LimiterGroupName:  "booking",
		WindowDurationSec: 60,
		MaxQuota:          1,
		NowUTC:            now,
	})
	assert.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestApplyResourceLimiter_WindowTTLCoversWindow(t *testing.T) {
	redis := newFakeRedis()
	limiter := NewResourceLimiter(redis, zap.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	_, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:      "patient@example.com",
		LimiterGroupName:  "booking",
		WindowDurationSec: 30,
		MaxQuota:          5,
		NowUTC:            now,
	})
	assert.NoError(t, err)

	for _, ttl := range redis.ttls {
		assert.Equal(t, 31*time.Second, ttl)
	}
}
