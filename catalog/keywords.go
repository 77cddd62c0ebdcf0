package catalog

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized in location keyword patterns.
const (
	placeholderProvince = "{sehir}"
	placeholderDistrict = "{ilce}"
	placeholderSector   = "{sektor}"
)

// LocationKeywords expands the service's location patterns for a province
// and optional district. Patterns with a district placeholder are skipped on
// province-level pages; sector patterns are always skipped here, they belong
// to sector-targeted campaigns.
func LocationKeywords(s *Service, provinceName, districtName string) []string {
	keywords := make([]string, 0, len(s.LocationPatterns))
	for _, pattern := range s.LocationPatterns {
		kw := strings.ReplaceAll(pattern, placeholderProvince, strings.ToLower(provinceName))

		if strings.Contains(kw, placeholderDistrict) {
			if districtName == "" {
				continue
			}
			kw = strings.ReplaceAll(kw, placeholderDistrict, strings.ToLower(districtName))
		}
		if strings.Contains(kw, placeholderSector) {
			continue
		}
		keywords = append(keywords, kw)
	}
	return keywords
}

// PageTitle builds the title tag for a location page. District pages lead
// with the district; an optional company name is appended as a brand suffix.
func PageTitle(s *Service, provinceName, districtName, companyName string) string {
	location := provinceName
	if districtName != "" {
		location = fmt.Sprintf("%s, %s", districtName, provinceName)
	}
	title := fmt.Sprintf("%s %s", location, s.Name)
	if companyName != "" {
		title += " | " + companyName
	}
	return title
}

// MetaDescription builds the meta description for a location page.
func MetaDescription(s *Service, provinceName, districtName string) string {
	location := provinceName
	if districtName != "" {
		location = fmt.Sprintf("%s ve %s", districtName, provinceName)
	}
	return fmt.Sprintf("%s bolgesinde profesyonel %s hizmeti. %s. Hemen teklif alin!",
		location, strings.ToLower(s.Name), s.ShortDescription)
}
