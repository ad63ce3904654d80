package memory

import (
	"context"
	"encoding/json"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// PlanRepository keeps the saved plan in process memory. Default store
// for development; the plan survives restarts only with the postgres
// or redis backends.
type PlanRepository struct {
	cache *cache.Cache
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.IPlanRepository = (*PlanRepository)(nil)

func (r *PlanRepository) Save(ctx context.Context, plan *entity.SitePlan) error {
	// Stored as JSON rather than a pointer so the persisted shape (and
	// its corruption handling) matches the durable backends.
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	r.cache.Set(constant.PlanStoreKey, data, cache.NoExpiration)
	return nil
}

func (r *PlanRepository) Load(ctx context.Context) (*entity.SitePlan, error) {
	x, found := r.cache.Get(constant.PlanStoreKey)
	if !found {
		return nil, nil
	}
	data, ok := x.([]byte)
	if !ok {
		r.cache.Delete(constant.PlanStoreKey)
		return nil, nil
	}

	var plan entity.SitePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		r.cache.Delete(constant.PlanStoreKey)
		return nil, nil
	}
	return &plan, nil
}

func (r *PlanRepository) Clear(ctx context.Context) error {
	r.cache.Delete(constant.PlanStoreKey)
	return nil
}
