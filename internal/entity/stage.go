package entity

// Stage is the wizard's workflow position. It is derived from the plan
// data rather than stored, so a reloaded session lands on the same
// stage its data implies.
type Stage string

const (
	StageInput             Stage = "DESCRIPTION_INPUT"
	StageSitemapLoading    Stage = "SITEMAP_LOADING"
	StageSitemapReady      Stage = "SITEMAP_READY"
	StageWireframesLoading Stage = "WIREFRAMES_LOADING"
	StageEnhancementsReady Stage = "ENHANCEMENTS_READY"
	StageError             Stage = "ERROR"
)

// InferStage derives the stage a plan's data implies. This is the only
// place that rule lives: the planner re-derives the stage through it
// after every completed step and again when a saved plan is loaded.
//
// A wireframe counts once its generation attempt settled, even if the
// attempt was captured as an error section; one failed page does not
// push the whole session back to the sitemap step.
func InferStage(p *SitePlan) Stage {
	if p == nil || len(p.Sitemap) == 0 {
		return StageInput
	}
	if len(p.PageWireframes) != len(p.Sitemap) {
		return StageSitemapReady
	}
	for i := range p.PageWireframes {
		if !p.PageWireframes[i].Settled() {
			return StageSitemapReady
		}
	}
	return StageEnhancementsReady
}
