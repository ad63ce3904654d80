package redisrepo

import (
	"context"
	"encoding/json"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type planRepository struct {
	rdb *redis.Client
}

func NewPlanRepository(rdb *redis.Client) contract.IPlanRepository {
	return &planRepository{rdb: rdb}
}

func (r *planRepository) Save(ctx context.Context, plan *entity.SitePlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, constant.PlanStoreKey, data, 0).Err()
}

func (r *planRepository) Load(ctx context.Context) (*entity.SitePlan, error) {
	data, err := r.rdb.Get(ctx, constant.PlanStoreKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan entity.SitePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		_ = r.Clear(ctx)
		return nil, nil
	}
	return &plan, nil
}

func (r *planRepository) Clear(ctx context.Context) error {
	return r.rdb.Del(ctx, constant.PlanStoreKey).Err()
}
