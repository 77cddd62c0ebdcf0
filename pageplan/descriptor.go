// Package pageplan explodes a service area and service catalog into the
// full set of location landing pages a generated site carries.
//
// The URL space is service-first: /{service}/{province}/ for province pages
// and /{service}/{province}/{district}/ for district pages. Every URL in a
// plan is unique; a collision aborts the plan rather than silently dropping
// a page.
package pageplan

import (
	"github.com/prosektorweb/sitegen/content"
)

// Breadcrumb is one step of a page's breadcrumb trail.
type Breadcrumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is the generation descriptor for one location landing page. It
// carries everything the build stage needs to materialize the page.
type Page struct {
	// Path is the site-relative URL, always with a trailing slash.
	Path string `json:"path"`

	// CanonicalURL is Path prefixed with the site's base URL.
	CanonicalURL string `json:"canonical_url"`

	// Title is the title tag text.
	Title string `json:"title"`

	// MetaDescription is the meta description text.
	MetaDescription string `json:"meta_description"`

	// Keywords are the location-expanded target phrases.
	Keywords []string `json:"keywords"`

	// H1 is the main page heading.
	H1 string `json:"h1"`

	// ServiceID identifies the catalog service this page sells.
	ServiceID string `json:"service_id"`

	// ServiceName is the display name of the service.
	ServiceName string `json:"service_name"`

	// ProvinceID and ProvinceSlug locate the page's province.
	ProvinceID   int    `json:"province_id"`
	ProvinceSlug string `json:"province_slug"`

	// DistrictSlug is set on district pages only.
	DistrictSlug string `json:"district_slug,omitempty"`

	// IsDistrictPage marks district-level pages.
	IsDistrictPage bool `json:"is_district_page"`

	// Sections lists the content section ids the page must render,
	// straight from the catalog.
	Sections []string `json:"sections"`

	// Body is the rendered markdown content, present when the plan was
	// generated with content rendering enabled.
	Body *content.Rendered `json:"body,omitempty"`

	// ContentSections is the structured section list for the external
	// renderer, present when content rendering is enabled.
	ContentSections []content.Section `json:"content_sections,omitempty"`

	// Schema is the structured-data block for the page.
	Schema *LocalBusinessSchema `json:"schema,omitempty"`

	// RelatedPages links the same service in nearby locations.
	RelatedPages []string `json:"related_pages,omitempty"`

	// Breadcrumbs is the trail from the homepage down to this page.
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
}

// ProvincePagePath returns the URL path of a province-level page.
func ProvincePagePath(serviceSlug, provinceSlug string) string {
	return "/" + serviceSlug + "/" + provinceSlug + "/"
}

// DistrictPagePath returns the URL path of a district-level page.
func DistrictPagePath(serviceSlug, provinceSlug, districtSlug string) string {
	return "/" + serviceSlug + "/" + provinceSlug + "/" + districtSlug + "/"
}
