package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/dto"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/mapper"
	"ai-siteplanner-be/internal/pkg/apperrors"
	"ai-siteplanner-be/internal/pkg/logger"
	"ai-siteplanner-be/internal/repository/contract"
)

// Enhancement error keys, matching the aggregate's JSON field names.
const (
	enhKeySchemaSet   = "ldJsonSchema"
	enhKeySuggestions = "siteSuggestions"
	enhKeyGoLive      = "goLiveChecklist"
	enhKeyWebDev      = "webDevChecklist"
	enhKeySerp        = "serpPreview"
	enhKeySeoStrategy = "seoStrategy"
)

// ProgressNotifier receives live feedback while a long generation run
// is in flight. The websocket hub implements it.
type ProgressNotifier interface {
	Progress(message string)
	StageChanged(stage entity.Stage, errMessage string)
}

// IPlannerService drives the wizard: description in, sitemap and
// wireframes out, then independent SEO enhancements on top. All methods
// mutate one session aggregate; calls are serialized by a mutex, never
// interleaved.
type IPlannerService interface {
	GeneratePlan(ctx context.Context, req *dto.GeneratePlanRequest) (*dto.PlanStateResponse, error)
	RegeneratePlan(ctx context.Context) (*dto.PlanStateResponse, error)
	StartOver(ctx context.Context) *dto.PlanStateResponse
	ResetAll(ctx context.Context) (*dto.PlanStateResponse, error)
	Snapshot() *dto.PlanStateResponse
	ExportPlan() ([]byte, error)

	SavePlan(ctx context.Context) error
	LoadPlan(ctx context.Context) (*dto.PlanStateResponse, error)

	EnhanceSchemaSet(ctx context.Context) (*dto.PlanStateResponse, error)
	EnhanceSuggestions(ctx context.Context) (*dto.PlanStateResponse, error)
	EnhanceChecklist(ctx context.Context, kind constant.ChecklistKind) (*dto.PlanStateResponse, error)
	EnhanceSerpPreview(ctx context.Context) (*dto.PlanStateResponse, error)
	EnhanceSeoStrategy(ctx context.Context) (*dto.PlanStateResponse, error)
}

type plannerService struct {
	mu sync.Mutex

	plan      *entity.SitePlan
	stage     entity.Stage
	errMsg    string
	progress  string
	enhErrors map[string]string

	generator          IGeneratorService
	planRepo           contract.IPlanRepository
	publisher          IPublisherService
	notifier           ProgressNotifier
	logger             logger.ILogger
	defaultTemperature float64
}

func NewPlannerService(
	generator IGeneratorService,
	planRepo contract.IPlanRepository,
	publisher IPublisherService,
	notifier ProgressNotifier,
	log logger.ILogger,
	defaultTemperature float64,
) IPlannerService {
	return &plannerService{
		plan:               &entity.SitePlan{Temperature: defaultTemperature},
		stage:              entity.StageInput,
		enhErrors:          make(map[string]string),
		generator:          generator,
		planRepo:           planRepo,
		publisher:          publisher,
		notifier:           notifier,
		logger:             log,
		defaultTemperature: defaultTemperature,
	}
}

// setStage records and broadcasts a transition. Callers hold the mutex.
func (s *plannerService) setStage(stage entity.Stage) {
	s.stage = stage
	if s.notifier != nil {
		s.notifier.StageChanged(stage, s.errMsg)
	}
}

func (s *plannerService) setProgress(message string) {
	s.progress = message
	if s.notifier != nil && message != "" {
		s.notifier.Progress(message)
	}
}

// publishSnapshot hands the current aggregate to the autosave consumer.
// Publishing is best effort; a failed autosave never fails the workflow.
func (s *plannerService) publishSnapshot(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(s.plan)
	if err != nil {
		s.logger.Error("PlannerService", "Failed to marshal plan snapshot", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("PlannerService", "Failed to publish plan snapshot", map[string]interface{}{"error": err.Error()})
	}
}

// snapshotLocked hands out a deep copy. The caller encodes the snapshot
// after the mutex is released, so it must not alias the live aggregate.
func (s *plannerService) snapshotLocked() *dto.PlanStateResponse {
	return mapper.ToPlanStateResponse(s.plan.Clone(), s.stage, s.progress, s.errMsg, s.enhErrors)
}

func (s *plannerService) Snapshot() *dto.PlanStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *plannerService) ExportPlan() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.plan, "", "  ")
}

func (s *plannerService) GeneratePlan(ctx context.Context, req *dto.GeneratePlanRequest) (*dto.PlanStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.ErrEmptyDescription
	}
	if !s.generator.Configured() {
		s.errMsg = "API key is not configured. Set GOOGLE_GEMINI_API_KEY in the environment."
		s.setStage(entity.StageError)
		return nil, apperrors.ErrAPIKeyMissing
	}

	temperature := s.plan.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	return s.runPipeline(ctx, description, temperature)
}

func (s *plannerService) RegeneratePlan(ctx context.Context) (*dto.PlanStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	description := strings.TrimSpace(s.plan.CompanyDescription)
	if description == "" {
		return nil, apperrors.ErrEmptyDescription
	}
	if !s.generator.Configured() {
		s.errMsg = "API key is not configured. Set GOOGLE_GEMINI_API_KEY in the environment."
		s.setStage(entity.StageError)
		return nil, apperrors.ErrAPIKeyMissing
	}

	return s.runPipeline(ctx, description, s.plan.Temperature)
}

// runPipeline is the whole generation run: sitemap first, then one
// wireframe per page in sitemap order. Callers hold the mutex, so a
// second submit waits for the current run instead of interleaving.
func (s *plannerService) runPipeline(ctx context.Context, description string, temperature float64) (*dto.PlanStateResponse, error) {
	// Everything from the previous session is dropped before the first
	// provider call; the new description defines a new session.
	s.plan = &entity.SitePlan{
		CompanyDescription: description,
		Temperature:        temperature,
	}
	s.errMsg = ""
	s.enhErrors = make(map[string]string)

	s.setProgress("Generating your sitemap...")
	s.setStage(entity.StageSitemapLoading)

	sitemap, err := s.generator.GenerateSitemap(ctx, description, temperature)
	if err != nil {
		s.errMsg = err.Error()
		s.progress = ""
		s.setStage(entity.StageError)
		return nil, err
	}
	if len(sitemap) == 0 {
		s.errMsg = "Sitemap generation resulted in no pages. Please try a different description or adjust temperature."
		s.progress = ""
		s.setStage(entity.StageError)
		return nil, &apperrors.GenerationError{Task: "sitemap", Detail: "the model returned no pages"}
	}

	s.plan.Sitemap = sitemap
	s.setStage(entity.StageSitemapReady)
	s.publishSnapshot(ctx)

	s.runWireframes(ctx, description, temperature)
	s.publishSnapshot(ctx)
	return s.snapshotLocked(), nil
}

func (s *plannerService) runWireframes(ctx context.Context, description string, temperature float64) {
	sitemap := s.plan.Sitemap

	wireframes := make([]entity.PageWireframe, 0, len(sitemap))
	for _, page := range sitemap {
		wireframes = append(wireframes, entity.PageWireframe{
			PageId:    page.Id,
			PageName:  page.PageName,
			Sections:  []entity.WireframeSection{},
			IsLoading: true,
		})
	}
	s.plan.PageWireframes = wireframes
	s.setStage(entity.StageWireframesLoading)

	for i, page := range sitemap {
		s.setProgress(fmt.Sprintf("Generating wireframe for %q (%d/%d)...", page.PageName, i+1, len(sitemap)))

		sections, err := s.generator.GenerateWireframeSections(ctx, page, description, temperature)
		if err != nil {
			s.logger.Warn("PlannerService", "Wireframe generation failed for page", map[string]interface{}{
				"page":  page.PageName,
				"error": err.Error(),
			})
			sections = []entity.WireframeSection{{
				Id:             fmt.Sprintf("%s%s-%d", entity.ErrorSectionIDPrefix, page.Id, time.Now().UnixMilli()),
				SectionName:    "Error Generating Wireframe",
				SectionPurpose: fmt.Sprintf("Could not generate wireframe sections for this page. %s", err.Error()),
			}}
		}

		s.plan.PageWireframes[i].Sections = sections
		s.plan.PageWireframes[i].IsLoading = false
	}

	s.setProgress("Site plan complete!")
	s.setStage(entity.InferStage(s.plan))
}

func (s *plannerService) StartOver(ctx context.Context) *dto.PlanStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startOverLocked()
	return s.snapshotLocked()
}

// startOverLocked drops generated data but keeps the typed description
// and temperature, so the user can tweak and resubmit.
func (s *plannerService) startOverLocked() {
	s.plan = &entity.SitePlan{
		CompanyDescription: s.plan.CompanyDescription,
		Temperature:        s.plan.Temperature,
	}
	s.errMsg = ""
	s.progress = ""
	s.enhErrors = make(map[string]string)
	s.setStage(entity.StageInput)
}

func (s *plannerService) ResetAll(ctx context.Context) (*dto.PlanStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.planRepo.Clear(ctx); err != nil {
		return nil, err
	}
	s.plan = &entity.SitePlan{Temperature: s.defaultTemperature}
	s.errMsg = ""
	s.progress = ""
	s.enhErrors = make(map[string]string)
	s.setStage(entity.StageInput)
	return s.snapshotLocked(), nil
}

func (s *plannerService) SavePlan(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planRepo.Save(ctx, s.plan)
}

func (s *plannerService) LoadPlan(ctx context.Context) (*dto.PlanStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.planRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.ErrNoSavedPlan
	}

	plan.ClampTemperature(s.defaultTemperature)
	for i := range plan.PageWireframes {
		plan.PageWireframes[i].IsLoading = false
	}

	s.plan = plan
	s.errMsg = ""
	s.progress = ""
	s.enhErrors = make(map[string]string)
	s.setStage(entity.InferStage(plan))
	return s.snapshotLocked(), nil
}

// enhance runs one independent enhancement task. Failures are recorded
// under the task's key and surfaced, but never touch the core plan.
func (s *plannerService) enhance(ctx context.Context, key string, run func() error) (*dto.PlanStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != entity.StageEnhancementsReady {
		return nil, apperrors.ErrWrongStage
	}

	delete(s.enhErrors, key)
	if err := run(); err != nil {
		s.enhErrors[key] = err.Error()
		return nil, err
	}

	s.publishSnapshot(ctx)
	return s.snapshotLocked(), nil
}

func (s *plannerService) EnhanceSchemaSet(ctx context.Context) (*dto.PlanStateResponse, error) {
	return s.enhance(ctx, enhKeySchemaSet, func() error {
		schemas, err := s.generator.GenerateSchemaSet(ctx, s.plan.CompanyDescription, s.plan.Sitemap, s.plan.Temperature)
		if err != nil {
			return err
		}
		s.plan.SchemaSet = schemas
		return nil
	})
}

func (s *plannerService) EnhanceSuggestions(ctx context.Context) (*dto.PlanStateResponse, error) {
	return s.enhance(ctx, enhKeySuggestions, func() error {
		suggestions, err := s.generator.GenerateSuggestions(ctx, s.plan.CompanyDescription, s.plan.Sitemap, s.plan.Temperature)
		if err != nil {
			return err
		}
		s.plan.Suggestions = suggestions
		return nil
	})
}

func (s *plannerService) EnhanceChecklist(ctx context.Context, kind constant.ChecklistKind) (*dto.PlanStateResponse, error) {
	key := enhKeyGoLive
	if kind == constant.ChecklistWebDev {
		key = enhKeyWebDev
	}
	return s.enhance(ctx, key, func() error {
		items, err := s.generator.GenerateChecklist(ctx, kind, s.plan.CompanyDescription, s.plan.Sitemap, s.plan.Temperature)
		if err != nil {
			return err
		}
		if kind == constant.ChecklistWebDev {
			s.plan.WebDevChecklist = items
		} else {
			s.plan.GoLiveChecklist = items
		}
		return nil
	})
}

func (s *plannerService) EnhanceSerpPreview(ctx context.Context) (*dto.PlanStateResponse, error) {
	return s.enhance(ctx, enhKeySerp, func() error {
		preview, err := s.generator.GenerateSerpPreview(ctx, s.plan.CompanyDescription, s.plan.Homepage(), s.plan.Temperature)
		if err != nil {
			return err
		}
		s.plan.SerpPreview = preview
		return nil
	})
}

func (s *plannerService) EnhanceSeoStrategy(ctx context.Context) (*dto.PlanStateResponse, error) {
	return s.enhance(ctx, enhKeySeoStrategy, func() error {
		insights, err := s.generator.GenerateSeoStrategy(ctx, s.plan.CompanyDescription, s.plan.Sitemap, s.plan.SchemaSet, s.plan.Temperature)
		if err != nil {
			return err
		}
		s.plan.SeoStrategy = insights
		return nil
	})
}
