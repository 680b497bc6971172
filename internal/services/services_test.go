package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"filehub-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.File{}))
	return db
}

func newTestBlobs(t *testing.T) *BlobService {
	t.Helper()

	blobs, err := NewBlobService(t.TempDir())
	require.NoError(t, err)
	return blobs
}

// fakeKV is an in-memory stand-in for the Redis-backed cache client.
type fakeKV struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
}

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

func newFakeKV() *fakeKV {
	return &fakeKV{entries: map[string]fakeEntry{}}
}

func (kv *fakeKV) SetEx(key, value string, ttlSeconds int) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = fakeEntry{value: value, expiresAt: time.Now().Add(time.Duration(ttlSeconds) * time.Second)}
	return nil
}

func (kv *fakeKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	entry, ok := kv.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (kv *fakeKV) Del(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.entries, key)
	return nil
}

// expire force-expires a key, standing in for elapsed TTL.
func (kv *fakeKV) expire(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if entry, ok := kv.entries[key]; ok {
		entry.expiresAt = time.Now().Add(-time.Second)
		kv.entries[key] = entry
	}
}

// fakeQueue records enqueued jobs instead of pushing them to Redis.
type fakeQueue struct {
	mu         sync.Mutex
	thumbnails []uuid.UUID
	welcomes   []uuid.UUID
	failing    bool
}

func (q *fakeQueue) EnqueueThumbnail(fileID, userID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failing {
		return fmt.Errorf("queue unavailable")
	}
	q.thumbnails = append(q.thumbnails, fileID)
	return nil
}

func (q *fakeQueue) EnqueueWelcome(userID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failing {
		return fmt.Errorf("queue unavailable")
	}
	q.welcomes = append(q.welcomes, userID)
	return nil
}

func (q *fakeQueue) thumbnailJobs() []uuid.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]uuid.UUID(nil), q.thumbnails...)
}

func (q *fakeQueue) welcomeJobs() []uuid.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]uuid.UUID(nil), q.welcomes...)
}
