package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/pkg/apperrors"
	"ai-siteplanner-be/internal/pkg/logger"
	"ai-siteplanner-be/pkg/genai"
	"ai-siteplanner-be/pkg/genai/normalizer"
)

// IGeneratorService is the planner's view of the model: one method per
// generation task. Each method returns domain values with local ids
// already assigned; parse problems are absorbed by the normalizer and
// only transport or provider failures come back as errors.
type IGeneratorService interface {
	Configured() bool
	GenerateSitemap(ctx context.Context, description string, temperature float64) ([]entity.SitemapPage, error)
	GenerateWireframeSections(ctx context.Context, page entity.SitemapPage, companyDescription string, temperature float64) ([]entity.WireframeSection, error)
	GenerateSchemaSet(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]entity.StructuredDataSchema, error)
	GenerateSuggestions(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error)
	GenerateChecklist(ctx context.Context, kind constant.ChecklistKind, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error)
	GenerateSerpPreview(ctx context.Context, companyDescription string, homepage *entity.SitemapPage, temperature float64) (*entity.SerpPreview, error)
	GenerateSeoStrategy(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, schemas []entity.StructuredDataSchema, temperature float64) ([]entity.SeoStrategyInsight, error)
}

type generatorService struct {
	client *genai.Client
	logger logger.ILogger
}

func NewGeneratorService(client *genai.Client, log logger.ILogger) IGeneratorService {
	return &generatorService{
		client: client,
		logger: log,
	}
}

// Configured reports whether the underlying client has a credential.
// The planner checks it up front so a missing key fails before any
// state is cleared.
func (s *generatorService) Configured() bool {
	return s.client.Configured()
}

// logReport records how a decode went. Fallbacks and recoveries are the
// interesting cases; clean parses are logged at debug for volume reasons.
func (s *generatorService) logReport(task string, report normalizer.Report) {
	details := map[string]interface{}{
		"task":     task,
		"outcome":  string(report.Outcome),
		"repaired": report.Repaired,
	}
	if report.Detail != "" {
		details["detail"] = report.Detail
	}
	switch report.Outcome {
	case normalizer.OutcomeParsed:
		s.logger.Debug("GeneratorService", "Model response decoded", details)
	default:
		s.logger.Warn("GeneratorService", "Model response needed normalization", details)
	}
}

func (s *generatorService) GenerateSitemap(ctx context.Context, description string, temperature float64) ([]entity.SitemapPage, error) {
	prompt := fmt.Sprintf("Generate a sitemap for a website described as: %q.", description)
	text, err := s.client.GenerateJSON(ctx, constant.SitemapSystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError("sitemap", err)
	}

	type rawPage struct {
		PageName        string `json:"pageName"`
		PageDescription string `json:"pageDescription"`
	}
	raw, report := normalizer.DecodeSlice[rawPage](text, []rawPage{})
	s.logReport("sitemap", report)

	now := time.Now().UnixMilli()
	pages := make([]entity.SitemapPage, 0, len(raw))
	for i, p := range raw {
		pages = append(pages, entity.SitemapPage{
			Id:              fmt.Sprintf("sitemap-page-%d-%d", now, i),
			PageName:        p.PageName,
			PageDescription: p.PageDescription,
		})
	}
	return pages, nil
}

func (s *generatorService) GenerateWireframeSections(ctx context.Context, page entity.SitemapPage, companyDescription string, temperature float64) ([]entity.WireframeSection, error) {
	prompt := fmt.Sprintf(
		"For a page titled %q with the description %q, which is part of a website for %q, generate a list of 3 to 6 typical sections or content blocks.",
		page.PageName, page.PageDescription, companyDescription,
	)
	text, err := s.client.GenerateJSON(ctx, constant.WireframeSystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError(fmt.Sprintf("wireframe for %s", page.PageName), err)
	}

	type rawSection struct {
		SectionName    string `json:"sectionName"`
		SectionPurpose string `json:"sectionPurpose"`
	}
	raw, report := normalizer.DecodeSlice[rawSection](text, []rawSection{})
	s.logReport("wireframe", report)

	now := time.Now().UnixMilli()
	sections := make([]entity.WireframeSection, 0, len(raw))
	for i, sec := range raw {
		sections = append(sections, entity.WireframeSection{
			Id:             fmt.Sprintf("wf-section-%d-%d", now, i),
			SectionName:    sec.SectionName,
			SectionPurpose: sec.SectionPurpose,
		})
	}
	return sections, nil
}

func (s *generatorService) GenerateSchemaSet(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]entity.StructuredDataSchema, error) {
	type pageSummary struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	summary := make([]pageSummary, 0, len(sitemap))
	for _, p := range sitemap {
		summary = append(summary, pageSummary{Name: p.PageName, Description: p.PageDescription})
	}
	summaryJson, err := json.Marshal(summary)
	if err != nil {
		return nil, apperrors.NewGenerationError("LD+JSON schema array", err)
	}

	prompt := fmt.Sprintf(
		"Generate an array of LD+JSON schema objects for a website. Company description: %q. Sitemap pages: %s.",
		companyDescription, string(summaryJson),
	)
	text, err := s.client.GenerateJSON(ctx, constant.SchemaSetSystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError("LD+JSON schema array", err)
	}

	schemas, report := normalizer.DecodeSlice[entity.StructuredDataSchema](text, []entity.StructuredDataSchema{})
	s.logReport("schema-set", report)
	return schemas, nil
}

func (s *generatorService) GenerateSuggestions(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error) {
	prompt := fmt.Sprintf(
		"Provide site suggestions for a website. Company: %q. Sitemap: %s.",
		companyDescription, pageNames(sitemap),
	)
	text, err := s.client.GenerateJSON(ctx, constant.SuggestionsSystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError("site suggestions", err)
	}

	suggestions, report := normalizer.DecodeSlice[string](text, []string{})
	s.logReport("suggestions", report)
	return suggestions, nil
}

func (s *generatorService) GenerateChecklist(ctx context.Context, kind constant.ChecklistKind, companyDescription string, sitemap []entity.SitemapPage, temperature float64) ([]string, error) {
	specific := constant.GoLiveChecklistInstructionV1
	if kind == constant.ChecklistWebDev {
		specific = constant.WebDevChecklistInstructionV1
	}
	instruction := fmt.Sprintf(constant.ChecklistSystemInstructionBaseV1, specific)

	prompt := fmt.Sprintf(
		"Generate a %s checklist for a website. Company: %q. Sitemap: %s.",
		kind, companyDescription, pageNames(sitemap),
	)
	text, err := s.client.GenerateJSON(ctx, instruction, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError(fmt.Sprintf("%s checklist", kind), err)
	}

	items, report := normalizer.DecodeSlice[string](text, []string{})
	s.logReport("checklist", report)
	return items, nil
}

func (s *generatorService) GenerateSerpPreview(ctx context.Context, companyDescription string, homepage *entity.SitemapPage, temperature float64) (*entity.SerpPreview, error) {
	pageCtx := "No specific homepage data provided, focus on the overall company description."
	if homepage != nil {
		pageCtx = fmt.Sprintf("Homepage name: %q, Homepage description: %q", homepage.PageName, homepage.PageDescription)
	}

	prompt := fmt.Sprintf(
		"Generate SERP title and description for a website. Company: %q. %s",
		companyDescription, pageCtx,
	)
	text, err := s.client.GenerateJSON(ctx, constant.SerpPreviewSystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError("SERP preview", err)
	}

	// An unusable payload degrades to a visibly-placeholder record rather
	// than an error; the preview is cosmetic.
	preview, report := normalizer.DecodeObject(text, entity.SerpPreview{
		Title:       "Error generating title",
		Description: "Error generating description",
		URL:         "https://example.com",
	})
	s.logReport("serp-preview", report)
	return &preview, nil
}

func (s *generatorService) GenerateSeoStrategy(ctx context.Context, companyDescription string, sitemap []entity.SitemapPage, schemas []entity.StructuredDataSchema, temperature float64) ([]entity.SeoStrategyInsight, error) {
	schemaCtx := "No LD+JSON schema has been generated yet."
	if len(schemas) > 0 {
		type schemaSummary struct {
			Type string `json:"type"`
			Name any    `json:"name,omitempty"`
		}
		head := schemas
		if len(head) > 2 {
			head = head[:2]
		}
		summaries := make([]schemaSummary, 0, len(head))
		for _, sc := range head {
			summaries = append(summaries, schemaSummary{Type: sc.Type(), Name: sc["name"]})
		}
		summaryJson, _ := json.Marshal(summaries)
		text := string(summaryJson)
		if len(text) > 300 {
			text = text[:300]
		}
		schemaCtx = fmt.Sprintf("The site has the following LD+JSON schemas (first few summarized): %s...", text)
	}

	prompt := fmt.Sprintf(
		"Provide SEO strategy insights. Company: %q. Sitemap: %s. %s",
		companyDescription, pageNames(sitemap), schemaCtx,
	)
	text, err := s.client.GenerateJSON(ctx, constant.SeoStrategySystemInstructionV1, prompt, temperature)
	if err != nil {
		return nil, apperrors.NewGenerationError("SEO strategy insights", err)
	}

	raw, report := normalizer.DecodeSlice[entity.SeoStrategyInsight](text, []entity.SeoStrategyInsight{})
	s.logReport("seo-strategy", report)

	// Backfill fields the model is allowed to omit.
	now := time.Now().UnixMilli()
	for i := range raw {
		if raw[i].Id == "" {
			raw[i].Id = fmt.Sprintf("seo-insight-%d-%d", now, i)
		}
		if raw[i].Title == "" {
			raw[i].Title = "Untitled Insight"
		}
		if raw[i].Explanation == "" {
			raw[i].Explanation = "No explanation provided."
		}
	}
	return raw, nil
}

func pageNames(sitemap []entity.SitemapPage) string {
	names := make([]string, 0, len(sitemap))
	for _, p := range sitemap {
		names = append(names, p.PageName)
	}
	return strings.Join(names, ", ")
}
