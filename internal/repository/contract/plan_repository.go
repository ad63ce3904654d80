package contract

import (
	"context"

	"ai-siteplanner-be/internal/entity"
)

// IPlanRepository stores the whole site plan as one blob under a fixed
// key. Load returns (nil, nil) when no plan is saved; implementations
// treat an unparsable blob the same way and discard it, so corruption
// never surfaces past this boundary.
type IPlanRepository interface {
	Save(ctx context.Context, plan *entity.SitePlan) error
	Load(ctx context.Context) (*entity.SitePlan, error)
	Clear(ctx context.Context) error
}
