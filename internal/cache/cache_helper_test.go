package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedRecord struct {
	Regno string `json:"regno"`
	Level int    `json:"level"`
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestCacheHelper_SetAndGet(t *testing.T) {
	_, client := setupCache(t)
	helper := NewCacheHelper(client, "applicant:")
	ctx := context.Background()

	want := cachedRecord{Regno: "R0001", Level: 2}
	if err := helper.Set(ctx, "regno:R0001", want, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got cachedRecord
	if err := helper.Get(ctx, "regno:R0001", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCacheHelper_GetMissing(t *testing.T) {
	_, client := setupCache(t)
	helper := NewCacheHelper(client, "applicant:")

	var got cachedRecord
	err := helper.Get(context.Background(), "regno:absent", &got)
	if !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Get() error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelper_Delete(t *testing.T) {
	_, client := setupCache(t)
	helper := NewCacheHelper(client, "applicant:")
	ctx := context.Background()

	keys := []string{"regno:R0001", "regno:R0002", "regno:R0003"}
	for _, key := range keys {
		if err := helper.Set(ctx, key, cachedRecord{Regno: key}, time.Minute); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := helper.Delete(ctx, keys...); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for _, key := range keys {
		var got cachedRecord
		if err := helper.Get(ctx, key, &got); !errors.Is(err, ErrCacheNotFound) {
			t.Errorf("Get(%s) after delete error = %v, want ErrCacheNotFound", key, err)
		}
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	_, client := setupCache(t)
	helper := NewCacheHelper(client, "report:")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("management:%d", i)
		if err := helper.Set(ctx, key, cachedRecord{Level: i}, time.Minute); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}
	if err := helper.Set(ctx, "tech:0", cachedRecord{}, time.Minute); err != nil {
		t.Fatalf("Set(tech:0) error = %v", err)
	}

	if err := helper.InvalidatePattern(ctx, "management:*"); err != nil {
		t.Fatalf("InvalidatePattern() error = %v", err)
	}

	var got cachedRecord
	if err := helper.Get(ctx, "management:0", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("management key survived invalidation, err = %v", err)
	}
	if err := helper.Get(ctx, "tech:0", &got); err != nil {
		t.Errorf("tech key should be untouched, err = %v", err)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "applicant:")
	ctx := context.Background()

	if err := helper.Set(ctx, "key", cachedRecord{}, time.Minute); err != nil {
		t.Errorf("Set() with nil client error = %v, want nil", err)
	}
	if err := helper.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() with nil client error = %v, want nil", err)
	}

	var got cachedRecord
	if err := helper.Get(ctx, "key", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Get() with nil client error = %v, want ErrCacheNotAvailable", err)
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	_, client := setupCache(t)
	helper := NewCacheHelper(client, "stats:")
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return cachedRecord{Regno: "R0009", Level: 1}, nil
	}

	var first cachedRecord
	if err := helper.CacheOrExecute(ctx, "dashboard:overview", &first, time.Minute, fetch); err != nil {
		t.Fatalf("CacheOrExecute() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
	if first.Regno != "R0009" {
		t.Errorf("first result = %+v", first)
	}

	// The write-back is asynchronous, so wait for it before the cached read.
	deadline := time.Now().Add(2 * time.Second)
	for {
		exists, err := helper.Exists(ctx, "dashboard:overview")
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if exists {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cache write-back never happened")
		}
		time.Sleep(10 * time.Millisecond)
	}

	var second cachedRecord
	if err := helper.CacheOrExecute(ctx, "dashboard:overview", &second, time.Minute, fetch); err != nil {
		t.Fatalf("CacheOrExecute() second call error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch calls after cached read = %d, want 1", calls)
	}
	if second != first {
		t.Errorf("cached read = %+v, want %+v", second, first)
	}
}

func TestCacheManager_InvalidateApplicantCache(t *testing.T) {
	_, client := setupCache(t)
	cm := NewCacheManager(client)
	ctx := context.Background()

	if err := cm.Applicant.Set(ctx, "regno:R0001", cachedRecord{Regno: "R0001"}, time.Minute); err != nil {
		t.Fatalf("seed applicant cache: %v", err)
	}
	if err := cm.Applicant.Set(ctx, "list:management:1", []cachedRecord{{Regno: "R0001"}}, time.Minute); err != nil {
		t.Fatalf("seed list cache: %v", err)
	}
	if err := cm.Report.Set(ctx, "management", cachedRecord{}, time.Minute); err != nil {
		t.Fatalf("seed report cache: %v", err)
	}
	if err := cm.Stats.Set(ctx, "dashboard:overview", cachedRecord{}, time.Minute); err != nil {
		t.Fatalf("seed stats cache: %v", err)
	}

	InvalidateApplicantCache(ctx, cm, "R0001")

	var got cachedRecord
	if err := cm.Applicant.Get(ctx, "regno:R0001", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("applicant record survived invalidation, err = %v", err)
	}
	var list []cachedRecord
	if err := cm.Applicant.Get(ctx, "list:management:1", &list); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("listing cache survived invalidation, err = %v", err)
	}
	if err := cm.Report.Get(ctx, "management", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("report cache survived invalidation, err = %v", err)
	}
	if err := cm.Stats.Get(ctx, "dashboard:overview", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("stats cache survived invalidation, err = %v", err)
	}
}
