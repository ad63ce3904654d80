package constant

import "ai-siteplanner-be/internal/entity"

// SeoChecklist is the comprehensive SEO reference checklist. It is
// static content, not model output, and is served read-only.
var SeoChecklist = []entity.ChecklistSection{
	{
		Id:                  "seo-site-optimization",
		Title:               "Site Optimization (On-Page SEO Elements)",
		IsInitiallyExpanded: true,
		Items: []entity.ChecklistItem{
			{
				Id:   "so-keywords",
				Text: "Keywords Optimization",
				SubItems: []entity.ChecklistItem{
					{Id: "so-kw-tips", Text: "Google Keyword Tips: Research and integrate relevant keywords."},
					{Id: "so-kw-planner", Text: "Adwords Keyword Planner: Utilize for keyword discovery and volume."},
					{Id: "so-kw-longtail", Text: "Long Tail Keywords: Target specific, longer phrases."},
				},
			},
			{
				Id:   "so-content",
				Text: "Content Optimization",
				SubItems: []entity.ChecklistItem{
					{Id: "so-co-types", Text: "Content Types: Diversify (blog posts, articles, videos, infographics)."},
					{Id: "so-co-structure", Text: "Content Structure: Use headings (H1-H6), paragraphs, lists for readability."},
					{Id: "so-co-angle", Text: "Content Angle: Ensure fresh, unique perspectives or value."},
					{Id: "so-co-remove-duplicate", Text: "Remove Duplicate Content: Check and resolve duplicate content issues across the site."},
				},
			},
			{Id: "so-title-tags", Text: "Optimize Title Tags: Concise, keyword-rich, and unique for each page."},
			{Id: "so-meta-information", Text: "Meta Information: Write compelling meta descriptions for each page."},
			{Id: "so-urls", Text: "Structure Your URLs: Clean, simple, readable, and SEO-friendly URLs."},
			{Id: "so-navigation", Text: "Optimize Your Navigation Menu: Clear, logical, and indexable menu items."},
			{Id: "so-images", Text: "Optimize Your Images: Use descriptive alt text, compress images for speed."},
			{Id: "so-internal-links", Text: "Internal Link Optimization: Link relevant pages within your site."},
			{Id: "so-structured-data", Text: "Use Structured Data Markup (Schema): Implement relevant schema to improve search appearance."},
		},
	},
	{
		Id:    "seo-technical-optimization",
		Title: "Technical Optimization",
		Items: []entity.ChecklistItem{
			{Id: "to-site-structure", Text: "Site Page Structure: Logical hierarchy and organization."},
			{Id: "to-ux", Text: "UX User Experience: Improve dwell time through intuitive design and valuable content."},
			{Id: "to-mobile", Text: "Mobile Adaptation & Mobile-Friendly Website: Ensure responsive design, Google ranks mobile-first sites higher."},
			{Id: "to-usability", Text: "Usability: Easy to navigate and use for all visitors."},
			{Id: "to-loading-speed", Text: "Loading Speed: Optimize for fast page load times."},
			{Id: "to-page-indexing", Text: "Page Indexing: Ensure important pages are crawlable and indexable."},
			{Id: "to-canonical", Text: "Canonical (Unique URL): Use canonical tags to prevent duplicate content issues."},
			{Id: "to-duplicate-detection", Text: "Duplicate Content Detection: Regularly check and resolve."},
			{Id: "to-404", Text: "Percentage of 404 Error Pages: Monitor and minimize 404 errors, create custom 404 page."},
			{Id: "to-redirects", Text: "Setup 301 Redirects: Use for permanently moved content to pass link equity."},
			{Id: "to-sitemap-xml", Text: "Pay Attention To XML Sitemap: Create and submit an accurate XML sitemap to search engines."},
			{Id: "to-robots-txt", Text: "Robots.txt: Configure correctly to guide web crawlers."},
		},
	},
	{
		Id:    "seo-off-site-optimization",
		Title: "Off-site Optimization",
		Items: []entity.ChecklistItem{
			{
				Id:   "os-backlinks",
				Text: "Backlinks (Build Quality Backlinks)",
				SubItems: []entity.ChecklistItem{
					{Id: "os-bl-community", Text: "Community Promotion: Engage in relevant communities."},
					{Id: "os-bl-social", Text: "Social Networking Sites: Share content and engage."},
					{Id: "os-bl-links", Text: "Links: Acquire from high-authority, relevant websites."},
				},
			},
			{Id: "os-website-authority", Text: "Website Authority: Build overall domain and page authority."},
			{Id: "os-competitor-analysis", Text: "Competitor Analysis: Analyze competitor backlink profiles and strategies."},
		},
	},
	{
		Id:    "seo-monitoring-tracking",
		Title: "Monitoring and Tracking (All Things Google)",
		Items: []entity.ChecklistItem{
			{
				Id:   "mt-ga",
				Text: "Google Analytics (GA) - Setup Google Analytics",
				SubItems: []entity.ChecklistItem{
					{Id: "mt-ga-pageviews", Text: "Pageviews: Track views for each page."},
					{Id: "mt-ga-bounce", Text: "Bounce Rate: Monitor and aim to reduce."},
					{Id: "mt-ga-dwell", Text: "Dwell Time: Analyze how long users stay on pages."},
					{Id: "mt-ga-keywords", Text: "Search Keywords: See what terms users search for on your site (if site search is enabled)."},
					{Id: "mt-ga-popular", Text: "Most Popular Pages: Identify top-performing content."},
					{Id: "mt-ga-exited", Text: "Most Exited Pages: Understand where users leave your site."},
				},
			},
			{Id: "mt-gsc", Text: "Google Search Console (GSC) - Setup Google Webmasters: Track site search performance, indexing status, and errors."},
			{Id: "mt-gmb", Text: "Provide Accurate Data on Your Google Listing (Google Business Profile): Detailed GMB helps users choose your business."},
			{Id: "mt-gmb-categories", Text: "Select Business Categories Carefully (GMB): Pick right main & additional categories for GMB."},
		},
	},
	{
		Id:    "seo-local-citations",
		Title: "Local SEO & Citations (Top Business Directories)",
		Items: []entity.ChecklistItem{
			{Id: "lc-location-data", Text: "Feature Complete Location Data: Have a Contact Us page with NAP (Name, Address, Phone) for all locations."},
			{Id: "lc-bing", Text: "Create/Claim Bing Listing: Earn more leads via Bing Places."},
			{Id: "lc-social", Text: "Get On Social Platforms: Identify where customers are and be visible."},
			{Id: "lc-yelp", Text: "Create/Claim Yelp Listing: Yelp is key for discovery and reviews."},
			{Id: "lc-other-directories", Text: "Create/Claim listings on other relevant directories."},
			{
				Id:   "lc-build-citations",
				Text: "Build Citations",
				SubItems: []entity.ChecklistItem{
					{Id: "lc-bc-top50", Text: "Submit citations to top 50 sites (relevant to your industry/location)."},
					{Id: "lc-bc-competitors", Text: "Check competitors' citations and get listed there too."},
				},
			},
		},
	},
	{
		Id:    "seo-reviews-testimonials",
		Title: "Customer Reviews & Testimonials",
		Items: []entity.ChecklistItem{
			{Id: "rt-monitor-respond", Text: "Monitor and respond to reviews regularly: Build customer relationships."},
			{Id: "rt-add-testimonials", Text: "Add recognizable testimonials: Display reviews from existing customers to build credibility."},
			{Id: "rt-generate-more", Text: "Look to generate more (positive) reviews: Improve overall rating."},
		},
	},
	{
		Id:    "seo-resource-tools",
		Title: "Resource Tools",
		Items: []entity.ChecklistItem{
			{Id: "rt-resources", Text: "Resources: Utilize various SEO blogs, forums, and guides."},
			{Id: "rt-tools", Text: "Tools: Use SEO tools for analysis and tracking (e.g., Chrome SEO Extensions, Ahrefs, SEMrush, Moz)."},
		},
	},
}
