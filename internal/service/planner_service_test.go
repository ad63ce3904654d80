package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/dto"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/pkg/apperrors"
	"ai-siteplanner-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type recordingNotifier struct {
	progress []string
	stages   []entity.Stage
}

func (n *recordingNotifier) Progress(message string) { n.progress = append(n.progress, message) }
func (n *recordingNotifier) StageChanged(stage entity.Stage, errMessage string) {
	n.stages = append(n.stages, stage)
}

type recordingPublisher struct {
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// fakeGenerator returns canned results and lets individual pages fail.
type fakeGenerator struct {
	unconfigured bool
	pageCount    int
	sitemapErr   error
	failPages    map[string]error
	schemaErr    error
}

func (f *fakeGenerator) Configured() bool { return !f.unconfigured }

func (f *fakeGenerator) GenerateSitemap(ctx context.Context, description string, temperature float64) ([]entity.SitemapPage, error) {
	if f.sitemapErr != nil {
		return nil, f.sitemapErr
	}
	pages := make([]entity.SitemapPage, 0, f.pageCount)
	for i := 0; i < f.pageCount; i++ {
		pages = append(pages, entity.SitemapPage{
			Id:              fmt.Sprintf("sitemap-page-%d", i),
			PageName:        fmt.Sprintf("Page %d", i),
			PageDescription: "desc",
		})
	}
	return pages, nil
}

func (f *fakeGenerator) GenerateWireframeSections(ctx context.Context, page entity.SitemapPage, companyDescription string, temperature float64) ([]entity.WireframeSection, error) {
	if err, ok := f.failPages[page.PageName]; ok {
		return nil, err
	}
	return []entity.WireframeSection{
		{Id: "wf-" + page.Id, SectionName: "Hero", SectionPurpose: "Intro"},
	}, nil
}

func (f *fakeGenerator) GenerateSchemaSet(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]entity.StructuredDataSchema, error) {
	if f.schemaErr != nil {
		return nil, f.schemaErr
	}
	return []entity.StructuredDataSchema{{"@type": "Organization", "name": "Acme"}}, nil
}

func (f *fakeGenerator) GenerateSuggestions(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error) {
	return []string{"Add a blog."}, nil
}

func (f *fakeGenerator) GenerateChecklist(ctx context.Context, kind constant.ChecklistKind, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error) {
	return []string{string(kind) + " item"}, nil
}

func (f *fakeGenerator) GenerateSerpPreview(ctx context.Context, companyDescription string, homepage *entity.SitemapPage, temperature float64) (*entity.SerpPreview, error) {
	return &entity.SerpPreview{Title: "T", Description: "D", URL: "https://example.com"}, nil
}

func (f *fakeGenerator) GenerateSeoStrategy(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, schemas []entity.StructuredDataSchema, temperature float64) ([]entity.SeoStrategyInsight, error) {
	return []entity.SeoStrategyInsight{{Id: "insight-1", Title: "Hubs", Explanation: "Link related pages."}}, nil
}

type plannerFixture struct {
	planner   IPlannerService
	generator *fakeGenerator
	repo      *memory.PlanRepository
	notifier  *recordingNotifier
	publisher *recordingPublisher
}

func newPlannerFixture(gen *fakeGenerator) *plannerFixture {
	repo := memory.NewPlanRepository()
	notifier := &recordingNotifier{}
	publisher := &recordingPublisher{}
	planner := NewPlannerService(gen, repo, publisher, notifier, nopLogger{}, 0.7)
	return &plannerFixture{
		planner:   planner,
		generator: gen,
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
	}
}

func generateReq(description string) *dto.GeneratePlanRequest {
	return &dto.GeneratePlanRequest{Description: description}
}

func TestGeneratePlanHappyPath(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 3})

	res, err := f.planner.GeneratePlan(context.Background(), generateReq("an artisan bakery"))
	require.NoError(t, err)

	assert.Equal(t, entity.StageEnhancementsReady, res.Stage)
	require.Len(t, res.Plan.Sitemap, 3)
	require.Len(t, res.Plan.PageWireframes, 3)
	for i, wf := range res.Plan.PageWireframes {
		assert.Equal(t, res.Plan.Sitemap[i].Id, wf.PageId)
		assert.True(t, wf.Resolved(), "wireframe %d should be resolved", i)
	}

	// Per-page progress, in sitemap order.
	var wireframeProgress []string
	for _, msg := range f.notifier.progress {
		if strings.Contains(msg, "Generating wireframe") {
			wireframeProgress = append(wireframeProgress, msg)
		}
	}
	require.Len(t, wireframeProgress, 3)
	assert.Contains(t, wireframeProgress[0], "(1/3)")
	assert.Contains(t, wireframeProgress[2], "(3/3)")

	assert.Contains(t, f.notifier.stages, entity.StageSitemapLoading)
	assert.Contains(t, f.notifier.stages, entity.StageWireframesLoading)
	assert.Equal(t, entity.StageEnhancementsReady, f.notifier.stages[len(f.notifier.stages)-1])

	// Snapshots published after sitemap and after wireframes.
	assert.Len(t, f.publisher.payloads, 2)
}

func TestGeneratePlanEmptyDescription(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 3})

	_, err := f.planner.GeneratePlan(context.Background(), generateReq("   "))
	assert.ErrorIs(t, err, apperrors.ErrEmptyDescription)
	assert.Equal(t, entity.StageInput, f.planner.Snapshot().Stage)
}

func TestGeneratePlanMissingAPIKey(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{unconfigured: true})

	_, err := f.planner.GeneratePlan(context.Background(), generateReq("a bakery"))
	assert.ErrorIs(t, err, apperrors.ErrAPIKeyMissing)

	snap := f.planner.Snapshot()
	assert.Equal(t, entity.StageError, snap.Stage)
	assert.Contains(t, snap.Error, "GOOGLE_GEMINI_API_KEY", "the message must name the variable config reads")
}

func TestGeneratePlanSitemapFailure(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{
		sitemapErr: apperrors.NewGenerationError("sitemap", errors.New("upstream boom")),
	})

	_, err := f.planner.GeneratePlan(context.Background(), generateReq("a bakery"))
	require.Error(t, err)
	assert.True(t, apperrors.IsGenerationError(err))

	snap := f.planner.Snapshot()
	assert.Equal(t, entity.StageError, snap.Stage)
	assert.Contains(t, snap.Error, "upstream boom")
}

func TestGeneratePlanZeroPagesIsError(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 0})

	_, err := f.planner.GeneratePlan(context.Background(), generateReq("a bakery"))
	require.Error(t, err)
	assert.True(t, apperrors.IsGenerationError(err))

	snap := f.planner.Snapshot()
	assert.Equal(t, entity.StageError, snap.Stage)
	assert.Contains(t, snap.Error, "no pages")
}

func TestGeneratePlanPartialWireframeFailure(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{
		pageCount: 3,
		failPages: map[string]error{"Page 1": errors.New("model hiccup")},
	})

	res, err := f.planner.GeneratePlan(context.Background(), generateReq("a bakery"))
	require.NoError(t, err, "one failed page must not fail the run")

	assert.Equal(t, entity.StageEnhancementsReady, res.Stage)
	require.Len(t, res.Plan.PageWireframes, 3)

	failed := res.Plan.PageWireframes[1]
	assert.True(t, failed.HasError())
	require.Len(t, failed.Sections, 1)
	assert.True(t, strings.HasPrefix(failed.Sections[0].Id, entity.ErrorSectionIDPrefix))
	assert.Contains(t, failed.Sections[0].SectionPurpose, "model hiccup")

	assert.True(t, res.Plan.PageWireframes[0].Resolved())
	assert.True(t, res.Plan.PageWireframes[2].Resolved())
}

func TestGeneratePlanClearsPreviousSession(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)
	_, err = f.planner.EnhanceSuggestions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, f.planner.Snapshot().Plan.Suggestions)

	res, err := f.planner.GeneratePlan(ctx, generateReq("a bike shop"))
	require.NoError(t, err)
	assert.Equal(t, "a bike shop", res.Plan.CompanyDescription)
	assert.Empty(t, res.Plan.Suggestions, "enhancements must not leak across sessions")
}

func TestEnhancementsRequireEnhancementsReady(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})

	_, err := f.planner.EnhanceSchemaSet(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrWrongStage)
}

func TestEnhancements(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	res, err := f.planner.EnhanceSchemaSet(ctx)
	require.NoError(t, err)
	require.Len(t, res.Plan.SchemaSet, 1)
	assert.Equal(t, "Organization", res.Plan.SchemaSet[0].Type())

	res, err = f.planner.EnhanceChecklist(ctx, constant.ChecklistGoLive)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go-Live item"}, res.Plan.GoLiveChecklist)

	res, err = f.planner.EnhanceChecklist(ctx, constant.ChecklistWebDev)
	require.NoError(t, err)
	assert.Equal(t, []string{"Web Development item"}, res.Plan.WebDevChecklist)

	res, err = f.planner.EnhanceSerpPreview(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Plan.SerpPreview)

	res, err = f.planner.EnhanceSeoStrategy(ctx)
	require.NoError(t, err)
	require.Len(t, res.Plan.SeoStrategy, 1)
}

func TestEnhancementFailureIsIsolated(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{
		pageCount: 2,
		schemaErr: apperrors.NewGenerationError("LD+JSON schema array", errors.New("boom")),
	})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	_, err = f.planner.EnhanceSchemaSet(ctx)
	require.Error(t, err)

	snap := f.planner.Snapshot()
	assert.Equal(t, entity.StageEnhancementsReady, snap.Stage, "failed enhancement must not change stage")
	assert.Contains(t, snap.EnhancementErrors["ldJsonSchema"], "boom")
	assert.Empty(t, snap.Plan.SchemaSet)

	// The others still work.
	res, err := f.planner.EnhanceSuggestions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Plan.Suggestions)
}

func TestSnapshotIsDetachedFromLiveSession(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	snap := f.planner.Snapshot()
	require.Empty(t, snap.Plan.Suggestions)

	// Later mutations of the session must not show up in an already
	// handed-out snapshot.
	_, err = f.planner.EnhanceSuggestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Plan.Suggestions)

	// Nor may writing through a snapshot reach the session.
	snap.Plan.Sitemap[0].PageName = "tampered"
	snap.Plan.PageWireframes[0].Sections[0].SectionName = "tampered"
	fresh := f.planner.Snapshot()
	assert.Equal(t, "Page 0", fresh.Plan.Sitemap[0].PageName)
	assert.Equal(t, "Hero", fresh.Plan.PageWireframes[0].Sections[0].SectionName)
}

func TestSnapshotEncodesWhileSessionMutates(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	// Encoding snapshots outside the lock must be safe against a
	// concurrent enhancement writing into the session.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			snap := f.planner.Snapshot()
			if _, err := json.Marshal(snap); err != nil {
				t.Errorf("marshal snapshot: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := f.planner.EnhanceSuggestions(ctx); err != nil {
				t.Errorf("enhance suggestions: %v", err)
				return
			}
		}
	}()
	wg.Wait()
}

func TestSaveAndLoadPlan(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)
	require.NoError(t, f.planner.SavePlan(ctx))

	// A different planner instance loads the same store.
	f2 := &plannerFixture{
		planner: NewPlannerService(&fakeGenerator{pageCount: 2}, f.repo, nil, nil, nopLogger{}, 0.7),
	}
	res, err := f2.planner.LoadPlan(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.StageEnhancementsReady, res.Stage, "stage is re-derived from the loaded data")
	assert.Equal(t, "a bakery", res.Plan.CompanyDescription)
	require.Len(t, res.Plan.PageWireframes, 2)
	for _, wf := range res.Plan.PageWireframes {
		assert.False(t, wf.IsLoading)
	}
}

func TestLoadPlanWithoutSave(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})

	_, err := f.planner.LoadPlan(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoSavedPlan)
}

func TestLoadPlanClampsTemperature(t *testing.T) {
	repo := memory.NewPlanRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &entity.SitePlan{
		CompanyDescription: "a bakery",
		Temperature:        4.2,
	}))

	planner := NewPlannerService(&fakeGenerator{}, repo, nil, nil, nopLogger{}, 0.7)
	res, err := planner.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Plan.Temperature)
	assert.Equal(t, entity.StageInput, res.Stage, "no sitemap means the wizard restarts at input")
}

func TestStartOverKeepsDescription(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	res := f.planner.StartOver(ctx)
	assert.Equal(t, entity.StageInput, res.Stage)
	assert.Equal(t, "a bakery", res.Plan.CompanyDescription)
	assert.Empty(t, res.Plan.Sitemap)
	assert.Empty(t, res.Plan.PageWireframes)
}

func TestResetAllClearsStore(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)
	require.NoError(t, f.planner.SavePlan(ctx))

	res, err := f.planner.ResetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.StageInput, res.Stage)
	assert.Empty(t, res.Plan.CompanyDescription)
	assert.Equal(t, 0.7, res.Plan.Temperature)

	_, err = f.planner.LoadPlan(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoSavedPlan)
}

func TestRegenerateUsesStoredDescription(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})
	ctx := context.Background()

	_, err := f.planner.GeneratePlan(ctx, generateReq("a bakery"))
	require.NoError(t, err)

	res, err := f.planner.RegeneratePlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a bakery", res.Plan.CompanyDescription)
	assert.Equal(t, entity.StageEnhancementsReady, res.Stage)
}

func TestRegenerateWithoutDescription(t *testing.T) {
	f := newPlannerFixture(&fakeGenerator{pageCount: 2})

	_, err := f.planner.RegeneratePlan(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrEmptyDescription)
}
