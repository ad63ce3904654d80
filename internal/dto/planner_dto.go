package dto

import "ai-siteplanner-be/internal/entity"

type GeneratePlanRequest struct {
	Description string   `json:"description" validate:"required"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type ChecklistRequest struct {
	Kind string `json:"kind" validate:"required,oneof='Go-Live' 'Web Development'"`
}

// PlanStateResponse is the full wizard snapshot: current stage, the
// aggregate, and whatever went wrong. EnhancementErrors is keyed by the
// enhancement's JSON field name so the client can pin each message to
// its panel.
type PlanStateResponse struct {
	Stage             entity.Stage      `json:"stage"`
	ProgressMessage   string            `json:"progressMessage,omitempty"`
	Error             string            `json:"error,omitempty"`
	Plan              *entity.SitePlan  `json:"plan"`
	EnhancementErrors map[string]string `json:"enhancementErrors,omitempty"`
}
