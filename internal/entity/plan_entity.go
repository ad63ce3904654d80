package entity

import "strings"

// ErrorSectionIDPrefix marks a synthetic section recorded in place of a
// wireframe that failed to generate. The prefix lives in the id so the
// marker survives serialization without an extra field.
const ErrorSectionIDPrefix = "error-"

type SitemapPage struct {
	Id              string `json:"id"`
	PageName        string `json:"pageName"`
	PageDescription string `json:"pageDescription"`
}

type WireframeSection struct {
	Id             string `json:"id"`
	SectionName    string `json:"sectionName"`
	SectionPurpose string `json:"sectionPurpose"`
}

func (s *WireframeSection) IsError() bool {
	return strings.HasPrefix(s.Id, ErrorSectionIDPrefix)
}

// PageWireframe holds the generated outline for one sitemap page.
// PageName is denormalized from the sitemap so a wireframe renders
// without a join. IsLoading is transient and never persisted.
type PageWireframe struct {
	PageId    string             `json:"pageId"`
	PageName  string             `json:"pageName"`
	Sections  []WireframeSection `json:"sections"`
	IsLoading bool               `json:"-"`
}

func (w *PageWireframe) HasError() bool {
	for i := range w.Sections {
		if w.Sections[i].IsError() {
			return true
		}
	}
	return false
}

// Resolved reports a fully successful wireframe: sections present, none
// of them an error marker, generation no longer in flight.
func (w *PageWireframe) Resolved() bool {
	return !w.IsLoading && len(w.Sections) > 0 && !w.HasError()
}

// Settled reports a wireframe whose generation attempt finished, whether
// it succeeded or was captured as an error section.
func (w *PageWireframe) Settled() bool {
	return !w.IsLoading && len(w.Sections) > 0
}

// ChecklistItem is a node of the static SEO reference checklist.
// Depth is unbounded in the type but the shipped data stays shallow.
type ChecklistItem struct {
	Id       string          `json:"id"`
	Text     string          `json:"text"`
	Details  string          `json:"details,omitempty"`
	SubItems []ChecklistItem `json:"subItems,omitempty"`
}

type ChecklistSection struct {
	Id                  string          `json:"id"`
	Title               string          `json:"title"`
	Items               []ChecklistItem `json:"items"`
	IsInitiallyExpanded bool            `json:"isInitiallyExpanded,omitempty"`
}

// StructuredDataSchema is one JSON-LD object as returned by the model.
// Treated as opaque apart from the @type discriminator.
type StructuredDataSchema map[string]any

func (s StructuredDataSchema) Type() string {
	if t, ok := s["@type"].(string); ok {
		return t
	}
	return ""
}

type SerpPreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type SeoStrategyInsight struct {
	Id             string   `json:"id"`
	Title          string   `json:"title"`
	Explanation    string   `json:"explanation"`
	ActionableTips []string `json:"actionableTips,omitempty"`
}

// SitePlan is the whole workflow session: everything generated so far
// plus the inputs that produced it. It is the unit of persistence.
type SitePlan struct {
	CompanyDescription string                 `json:"companyDescription"`
	Sitemap            []SitemapPage          `json:"sitemap,omitempty"`
	PageWireframes     []PageWireframe        `json:"pageWireframes,omitempty"`
	Temperature        float64                `json:"temperature"`
	SchemaSet          []StructuredDataSchema `json:"ldJsonSchema,omitempty"`
	Suggestions        []string               `json:"siteSuggestions,omitempty"`
	GoLiveChecklist    []string               `json:"goLiveChecklist,omitempty"`
	WebDevChecklist    []string               `json:"webDevChecklist,omitempty"`
	SerpPreview        *SerpPreview           `json:"serpPreview,omitempty"`
	SeoStrategy        []SeoStrategyInsight   `json:"seoStrategy,omitempty"`
}

// WireframeFor returns the wireframe entry matching a sitemap page id.
func (p *SitePlan) WireframeFor(pageId string) *PageWireframe {
	for i := range p.PageWireframes {
		if p.PageWireframes[i].PageId == pageId {
			return &p.PageWireframes[i]
		}
	}
	return nil
}

// Homepage picks the page used for SERP preview context: the first page
// whose name mentions "home", else the first page.
func (p *SitePlan) Homepage() *SitemapPage {
	if len(p.Sitemap) == 0 {
		return nil
	}
	for i := range p.Sitemap {
		if strings.Contains(strings.ToLower(p.Sitemap[i].PageName), "home") {
			return &p.Sitemap[i]
		}
	}
	return &p.Sitemap[0]
}

// Clone returns a deep copy of the aggregate. Snapshots handed out of
// the planner are clones, so encoding them races with nothing.
func (p *SitePlan) Clone() *SitePlan {
	if p == nil {
		return nil
	}
	clone := *p

	clone.Sitemap = append([]SitemapPage(nil), p.Sitemap...)
	clone.Suggestions = append([]string(nil), p.Suggestions...)
	clone.GoLiveChecklist = append([]string(nil), p.GoLiveChecklist...)
	clone.WebDevChecklist = append([]string(nil), p.WebDevChecklist...)

	if p.PageWireframes != nil {
		clone.PageWireframes = make([]PageWireframe, len(p.PageWireframes))
		for i := range p.PageWireframes {
			wf := p.PageWireframes[i]
			wf.Sections = append([]WireframeSection(nil), wf.Sections...)
			clone.PageWireframes[i] = wf
		}
	}

	if p.SchemaSet != nil {
		clone.SchemaSet = make([]StructuredDataSchema, len(p.SchemaSet))
		for i, schema := range p.SchemaSet {
			clone.SchemaSet[i] = StructuredDataSchema(cloneJSONValue(schema).(map[string]any))
		}
	}

	if p.SerpPreview != nil {
		preview := *p.SerpPreview
		clone.SerpPreview = &preview
	}

	if p.SeoStrategy != nil {
		clone.SeoStrategy = make([]SeoStrategyInsight, len(p.SeoStrategy))
		for i, insight := range p.SeoStrategy {
			insight.ActionableTips = append([]string(nil), insight.ActionableTips...)
			clone.SeoStrategy[i] = insight
		}
	}

	return &clone
}

// cloneJSONValue deep-copies the unmarshaled-JSON value shapes
// (maps, slices, scalars) a schema object can hold.
func cloneJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneJSONValue(val)
		}
		return m
	case StructuredDataSchema:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneJSONValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneJSONValue(val)
		}
		return s
	default:
		return v
	}
}

// ClampTemperature forces the stored temperature back into [0,1].
// Persisted blobs are not validated on write, so a corrupt value is
// repaired here on load.
func (p *SitePlan) ClampTemperature(fallback float64) {
	if p.Temperature != p.Temperature { // NaN
		p.Temperature = fallback
		return
	}
	if p.Temperature < 0 {
		p.Temperature = 0
	}
	if p.Temperature > 1 {
		p.Temperature = 1
	}
}
