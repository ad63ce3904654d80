// planctl pretty-prints an exported site plan JSON file, for eyeballing
// a plan without spinning up the server or a browser.
//
// Usage: planctl <plan.json>
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"ai-siteplanner-be/internal/entity"

	"github.com/fatih/color"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: planctl <plan.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "planctl: %v\n", err)
		os.Exit(1)
	}

	var plan entity.SitePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		fmt.Fprintf(os.Stderr, "planctl: invalid plan file: %v\n", err)
		os.Exit(1)
	}

	printPlan(&plan)
}

func printPlan(plan *entity.SitePlan) {
	title := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow, color.Bold)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	dim := color.New(color.Faint)

	title.Println("Site Plan")
	fmt.Printf("  Description: %s\n", plan.CompanyDescription)
	fmt.Printf("  Temperature: %.2f\n", plan.Temperature)
	fmt.Printf("  Stage:       %s\n\n", entity.InferStage(plan))

	section.Printf("Sitemap (%d pages)\n", len(plan.Sitemap))
	for _, page := range plan.Sitemap {
		fmt.Printf("  • %s\n", page.PageName)
		dim.Printf("    %s\n", page.PageDescription)
	}
	fmt.Println()

	section.Printf("Wireframes (%d)\n", len(plan.PageWireframes))
	for i := range plan.PageWireframes {
		wf := &plan.PageWireframes[i]
		if wf.HasError() {
			bad.Printf("  ✗ %s\n", wf.PageName)
		} else {
			ok.Printf("  ✓ %s\n", wf.PageName)
		}
		for _, sec := range wf.Sections {
			fmt.Printf("      - %s", sec.SectionName)
			dim.Printf(" (%s)\n", sec.SectionPurpose)
		}
	}
	fmt.Println()

	section.Println("Enhancements")
	printCount(ok, dim, "LD+JSON schemas", len(plan.SchemaSet))
	printCount(ok, dim, "Site suggestions", len(plan.Suggestions))
	printCount(ok, dim, "Go-Live checklist items", len(plan.GoLiveChecklist))
	printCount(ok, dim, "Web Development checklist items", len(plan.WebDevChecklist))
	printCount(ok, dim, "SEO strategy insights", len(plan.SeoStrategy))
	if plan.SerpPreview != nil {
		ok.Println("  ✓ SERP preview")
		fmt.Printf("      %s\n", plan.SerpPreview.Title)
		dim.Printf("      %s\n", plan.SerpPreview.Description)
		dim.Printf("      %s\n", plan.SerpPreview.URL)
	} else {
		dim.Println("  - SERP preview: not generated")
	}
}

func printCount(ok, dim *color.Color, label string, n int) {
	if n > 0 {
		ok.Printf("  ✓ %s: %d\n", label, n)
	} else {
		dim.Printf("  - %s: not generated\n", label)
	}
}
