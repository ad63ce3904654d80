package constant

// PlanStoreKey is the single fixed key the saved site plan blob lives
// under, regardless of store backend.
const PlanStoreKey = "aiSitePlannerData"

// PlanUpdatedTopicName is the in-process topic the planner publishes to
// after every completed workflow step; the autosave consumer listens on it.
const PlanUpdatedTopicName = "PLAN_UPDATED"

// ChecklistKind selects which model-generated checklist is requested.
// The kind changes only the instruction text, never the result shape.
type ChecklistKind string

const (
	ChecklistGoLive ChecklistKind = "Go-Live"
	ChecklistWebDev ChecklistKind = "Web Development"
)
