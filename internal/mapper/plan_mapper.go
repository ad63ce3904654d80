package mapper

import (
	"ai-siteplanner-be/internal/dto"
	"ai-siteplanner-be/internal/entity"
)

func ToPlanStateResponse(plan *entity.SitePlan, stage entity.Stage, progress, errMsg string, enhancementErrors map[string]string) *dto.PlanStateResponse {
	var errs map[string]string
	if len(enhancementErrors) > 0 {
		errs = make(map[string]string, len(enhancementErrors))
		for k, v := range enhancementErrors {
			errs[k] = v
		}
	}
	return &dto.PlanStateResponse{
		Stage:             stage,
		ProgressMessage:   progress,
		Error:             errMsg,
		Plan:              plan,
		EnhancementErrors: errs,
	}
}
