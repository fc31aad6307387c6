package trails

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

type memoryLog struct {
	mu    sync.Mutex
	hikes []models.HikeRecord
}

// MemoryRepository keeps trail logs in process memory. Each log has its own
// lock, so writers for different owners never contend.
type MemoryRepository struct {
	mu   sync.RWMutex
	logs map[string]*memoryLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{logs: make(map[string]*memoryLog)}
}

func (r *MemoryRepository) lookup(ownerID string) (*memoryLog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[ownerID]
	return l, ok
}

func (r *MemoryRepository) lookupOrCreate(ownerID string) *memoryLog {
	if l, ok := r.lookup(ownerID); ok {
		return l
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.logs[ownerID]; ok {
		return l
	}
	l := &memoryLog{}
	r.logs[ownerID] = l
	return l
}

func (r *MemoryRepository) AppendIfAbsent(ctx context.Context, ownerID string, hike models.HikeRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l := r.lookupOrCreate(ownerID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if indexOf(l.hikes, hike.TrailID) >= 0 {
		return false, nil
	}
	l.hikes = append(l.hikes, hike)
	return true, nil
}

func (r *MemoryRepository) UpdateMatching(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l, ok := r.lookup(ownerID)
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.hikes, trailID)
	if i < 0 {
		return false, nil
	}
	l.hikes[i].Apply(fields, now)
	return true, nil
}

func (r *MemoryRepository) Get(ctx context.Context, ownerID string) (*models.TrailLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := r.lookup(ownerID)
	if !ok {
		return nil, common.ErrNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	hikes := make([]models.HikeRecord, len(l.hikes))
	copy(hikes, l.hikes)
	return &models.TrailLog{OwnerID: ownerID, Hikes: hikes}, nil
}

func indexOf(hikes []models.HikeRecord, trailID string) int {
	for i := range hikes {
		if hikes[i].TrailID == trailID {
			return i
		}
	}
	return -1
}
