package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/pkg/apperrors"
	"ai-siteplanner-be/pkg/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelStub serves Gemini-shaped responses with a fixed text payload and
// records the last request for prompt assertions.
type modelStub struct {
	text    string
	status  int
	lastReq struct {
		System string
		User   string
	}
}

func (m *modelStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req genai.GenerateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
			m.lastReq.System = req.SystemInstruction.Parts[0].Text
		}
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			m.lastReq.User = req.Contents[0].Parts[0].Text
		}

		if m.status != 0 && m.status != http.StatusOK {
			http.Error(w, "upstream error", m.status)
			return
		}
		json.NewEncoder(w).Encode(genai.GenerateResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.ContentPart{{Text: m.text}}}},
			},
		})
	}
}

func newGeneratorFixture(t *testing.T, stub *modelStub) IGeneratorService {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	client := genai.NewClient("test-key", "gemini-2.5-flash", genai.WithBaseURL(srv.URL))
	return NewGeneratorService(client, nopLogger{})
}

func TestGenerateSitemapAssignsLocalIds(t *testing.T) {
	stub := &modelStub{text: `[
		{"pageName":"Homepage","pageDescription":"Landing"},
		{"pageName":"About Us","pageDescription":"Team"}
	]`}
	gen := newGeneratorFixture(t, stub)

	pages, err := gen.GenerateSitemap(context.Background(), "a bakery", 0.7)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	seen := map[string]bool{}
	for _, p := range pages {
		assert.True(t, strings.HasPrefix(p.Id, "sitemap-page-"), "id %q", p.Id)
		assert.False(t, seen[p.Id], "duplicate id %q", p.Id)
		seen[p.Id] = true
	}
	assert.Equal(t, "Homepage", pages[0].PageName)
	assert.Contains(t, stub.lastReq.User, "a bakery")
	assert.Equal(t, constant.SitemapSystemInstructionV1, stub.lastReq.System)
}

func TestGenerateSitemapRecoversSingleObject(t *testing.T) {
	stub := &modelStub{text: `{"pageName":"Homepage","pageDescription":"Landing"}`}
	gen := newGeneratorFixture(t, stub)

	pages, err := gen.GenerateSitemap(context.Background(), "a bakery", 0.7)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Homepage", pages[0].PageName)
}

func TestGenerateSitemapProviderFailure(t *testing.T) {
	stub := &modelStub{status: http.StatusInternalServerError}
	gen := newGeneratorFixture(t, stub)

	_, err := gen.GenerateSitemap(context.Background(), "a bakery", 0.7)
	require.Error(t, err)
	assert.True(t, apperrors.IsGenerationError(err))
	assert.Contains(t, err.Error(), "failed to generate sitemap")
}

func TestGenerateWireframeSections(t *testing.T) {
	stub := &modelStub{text: "```json\n[{\"sectionName\":\"Hero\",\"sectionPurpose\":\"Intro\"}]\n```"}
	gen := newGeneratorFixture(t, stub)

	page := entity.SitemapPage{Id: "p1", PageName: "Homepage", PageDescription: "Landing"}
	sections, err := gen.GenerateWireframeSections(context.Background(), page, "a bakery", 0.7)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.True(t, strings.HasPrefix(sections[0].Id, "wf-section-"))
	assert.Equal(t, "Hero", sections[0].SectionName)
	assert.Contains(t, stub.lastReq.User, `"Homepage"`)
	assert.Contains(t, stub.lastReq.User, "a bakery")
}

func TestGenerateChecklistSwitchesInstruction(t *testing.T) {
	stub := &modelStub{text: `["Check SSL."]`}
	gen := newGeneratorFixture(t, stub)
	ctx := context.Background()
	sitemap := []entity.SitemapPage{{Id: "p1", PageName: "Homepage"}}

	_, err := gen.GenerateChecklist(ctx, constant.ChecklistGoLive, "a bakery", sitemap, 0.7)
	require.NoError(t, err)
	assert.Contains(t, stub.lastReq.System, "Go-Live Checklist")
	assert.Contains(t, stub.lastReq.User, "Go-Live checklist")

	_, err = gen.GenerateChecklist(ctx, constant.ChecklistWebDev, "a bakery", sitemap, 0.7)
	require.NoError(t, err)
	assert.Contains(t, stub.lastReq.System, "Web Development Checklist")
}

func TestGenerateSerpPreviewFallsBackToPlaceholder(t *testing.T) {
	stub := &modelStub{text: "I cannot produce that."}
	gen := newGeneratorFixture(t, stub)

	preview, err := gen.GenerateSerpPreview(context.Background(), "a bakery", nil, 0.7)
	require.NoError(t, err, "an unusable payload degrades, not fails")
	assert.Equal(t, "Error generating title", preview.Title)
	assert.Equal(t, "Error generating description", preview.Description)
	assert.Equal(t, "https://example.com", preview.URL)
}

func TestGenerateSerpPreviewUsesHomepageContext(t *testing.T) {
	stub := &modelStub{text: `{"title":"Acme Bakery","description":"Fresh bread daily","url":"https://example.com"}`}
	gen := newGeneratorFixture(t, stub)

	homepage := &entity.SitemapPage{Id: "p1", PageName: "Homepage", PageDescription: "Landing"}
	preview, err := gen.GenerateSerpPreview(context.Background(), "a bakery", homepage, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "Acme Bakery", preview.Title)
	assert.Contains(t, stub.lastReq.User, `Homepage name: "Homepage"`)
}

func TestGenerateSeoStrategyBackfillsIds(t *testing.T) {
	stub := &modelStub{text: `[
		{"title":"Hubs","explanation":"Link related pages."},
		{"id":"insight-x","title":"Alt text","explanation":"Describe images."}
	]`}
	gen := newGeneratorFixture(t, stub)

	insights, err := gen.GenerateSeoStrategy(context.Background(), "a bakery", nil, nil, 0.7)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.True(t, strings.HasPrefix(insights[0].Id, "seo-insight-"))
	assert.Equal(t, "insight-x", insights[1].Id)
}

func TestGenerateSchemaSet(t *testing.T) {
	stub := &modelStub{text: `[{"@context":"https://schema.org","@type":"Organization","name":"Acme"}]`}
	gen := newGeneratorFixture(t, stub)

	sitemap := []entity.SitemapPage{{Id: "p1", PageName: "Homepage", PageDescription: "Landing"}}
	schemas, err := gen.GenerateSchemaSet(context.Background(), "a bakery", sitemap, 0.7)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "Organization", schemas[0].Type())
	assert.Contains(t, stub.lastReq.User, `"Homepage"`)
}
