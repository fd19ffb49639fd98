package core

import (
	"slices"

	"github.com/huangsam/scorecard/schema"
)

// TikTokCategory is shown only for campaigns of type tiktok.
const TikTokCategory = "TikTok Approvals"

// Catalog is the immutable, ordered set of categories of one phase.
type Catalog struct {
	phase      schema.Phase
	categories []schema.Category
}

// NewCatalog builds a catalog for a phase. The input slice is copied.
func NewCatalog(phase schema.Phase, categories []schema.Category) *Catalog {
	return &Catalog{phase: phase, categories: cloneCategories(categories)}
}

// Phase returns the phase the catalog belongs to.
func (c *Catalog) Phase() schema.Phase {
	return c.phase
}

// Categories returns every category in order, including ones without metrics.
func (c *Catalog) Categories() []schema.Category {
	return cloneCategories(c.categories)
}

// ScoredCategories returns the categories that have at least one metric.
func (c *Catalog) ScoredCategories() []schema.Category {
	var out []schema.Category
	for _, cat := range c.categories {
		if len(cat.Metrics) > 0 {
			out = append(out, cat)
		}
	}
	return cloneCategories(out)
}

// Category looks up a category by name.
func (c *Catalog) Category(name string) (schema.Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return schema.Category{}, false
}

// HasMetric reports whether category/metric exists in the catalog.
func (c *Catalog) HasMetric(category, metric string) bool {
	cat, ok := c.Category(category)
	return ok && cat.HasMetric(metric)
}

// Names returns the category names in order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// MetricCount counts every metric of the catalog. Empty categories add nothing.
func (c *Catalog) MetricCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Metrics)
	}
	return n
}

// FilterCatalog keeps the selected categories (all when selected is empty) in catalog order,
// minus categories that require a different campaign type.
func FilterCatalog(c *Catalog, selected []string, campaignType schema.CampaignType) *Catalog {
	if campaignType == "" {
		campaignType = schema.StandardCampaign
	}
	var kept []schema.Category
	for _, cat := range c.categories {
		if len(selected) > 0 && !slices.Contains(selected, cat.Name) {
			continue
		}
		if cat.RequiresCampaignType != "" && cat.RequiresCampaignType != campaignType {
			continue
		}
		kept = append(kept, cat)
	}
	return NewCatalog(c.phase, kept)
}

// CatalogSet pairs the pre and post catalogs.
type CatalogSet struct {
	Pre  *Catalog
	Post *Catalog
}

// ForPhase returns the catalog of a phase, or nil for an unknown phase.
func (s CatalogSet) ForPhase(p schema.Phase) *Catalog {
	switch p {
	case schema.PrePhase:
		return s.Pre
	case schema.PostPhase:
		return s.Post
	default:
		return nil
	}
}

// Filter applies FilterCatalog to both phases. A selection may name categories of either phase;
// names unknown to a phase are ignored for it.
func (s CatalogSet) Filter(selected []string, campaignType schema.CampaignType) CatalogSet {
	return CatalogSet{
		Pre:  FilterCatalog(s.Pre, selected, campaignType),
		Post: FilterCatalog(s.Post, selected, campaignType),
	}
}

// Listing returns the printable form of both catalogs.
func (s CatalogSet) Listing(campaignType schema.CampaignType) schema.CatalogListing {
	return schema.CatalogListing{
		CampaignType: campaignType,
		Pre:          s.Pre.Categories(),
		Post:         s.Post.Categories(),
	}
}

// AllNames returns every category name of both phases, pre first.
func (s CatalogSet) AllNames() []string {
	return append(s.Pre.Names(), s.Post.Names()...)
}

func cloneCategories(in []schema.Category) []schema.Category {
	if in == nil {
		return nil
	}
	out := make([]schema.Category, len(in))
	for i, cat := range in {
		out[i] = schema.Category{
			Name:                 cat.Name,
			Metrics:              slices.Clone(cat.Metrics),
			RequiresCampaignType: cat.RequiresCampaignType,
		}
	}
	return out
}

// DefaultCatalogs returns the built-in pre and post campaign catalogs.
func DefaultCatalogs() CatalogSet {
	return CatalogSet{
		Pre:  NewCatalog(schema.PrePhase, defaultPreCategories),
		Post: NewCatalog(schema.PostPhase, defaultPostCategories),
	}
}

var defaultPreCategories = []schema.Category{
	{Name: "Creative Readiness", Metrics: []string{
		"Assets received on time",
		"Storyboard approvals met deadlines",
		"Creative meets format & resolution",
	}},
	{Name: "Production Timeline", Metrics: []string{
		"Workback schedule followed",
		"Vendor deadlines met",
		"Final creative delivered on time",
	}},
	{Name: "Placement & Inventory", Metrics: []string{
		"Billboard locations confirmed",
		"Placement visibility",
		"Competitive share of voice",
	}},
	{Name: "Budget & Media", Metrics: []string{
		"Budget fully utilized",
		"Number of spots booked vs planned",
	}},
	{Name: "Target Audience", Metrics: []string{
		"Demographic match",
		"Estimated reach meets expectations",
	}},
	{Name: "Approval & Compliance", Metrics: []string{
		"Legal/brand compliance approved",
		"Vendor tests & pre-launch checks done",
	}},
	{Name: "Moderation Guidelines", Metrics: []string{
		"Pre-Defined Moderation Guidelines",
		"Approval Checklist",
	}},
	{Name: "Moderation Script", Metrics: []string{
		"Pre-Moderation Review Process",
		"Compliance Script Execution",
	}},
	{Name: "Moderation Workback Schedule", Metrics: []string{
		"Content Submission Date",
		"Moderation Review Deadline",
	}},
	{Name: "Influencer Assets", Metrics: []string{
		"Influencer Content Submission",
		"Influencer Content Approval",
	}},
	{Name: "Clients Approvals", Metrics: []string{
		"Client Content Submission",
		"Client Content Approval",
	}},
	{Name: "Creators Approvals", Metrics: []string{
		"Creator Content Submission",
		"Creator Content Approval",
	}},
	{Name: TikTokCategory, RequiresCampaignType: schema.TikTokCampaign, Metrics: []string{
		"TikTok Platform Compliance",
		"TikTok Ad Moderation Passed",
	}},
}

var defaultPostCategories = []schema.Category{
	{Name: "Impressions & Reach", Metrics: []string{
		"Actual impressions vs target",
		"Audience engagement rate",
		"Share of voice achieved",
	}},
	{Name: "Engagement & Awareness", Metrics: []string{
		"Social media mentions increased",
		"Hashtag usage met expectations",
		"Earned media coverage",
	}},
	{Name: "Brand Sentiment", Metrics: []string{
		"Positive sentiment shift",
		"UGC growth",
		"Influencer engagement",
	}},
	{Name: "Conversion & ROI", Metrics: []string{
		"Website traffic increased",
		"Sales lift / conversion growth",
		"Cost per engagement met target",
	}},
	{Name: "Photography & Visibility", Metrics: []string{
		"High-quality images captured",
		"Splash video created",
		"Social media features",
	}},
	{Name: "Campaign Learnings", Metrics: []string{
		"Key wins identified",
		"Areas for improvement noted",
		"Optimization recommendations made",
	}},
}
