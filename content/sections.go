package content

import (
	"fmt"
	"strings"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/geo"
)

// SectionType tags a structured content section for the render layer.
type SectionType string

const (
	SectionHero        SectionType = "hero"
	SectionText        SectionType = "text"
	SectionFAQ         SectionType = "faq"
	SectionCTA         SectionType = "cta"
	SectionFeatures    SectionType = "features"
	SectionStats       SectionType = "stats"
	SectionTestimonial SectionType = "testimonial"
)

// IsValid returns true if the type is one of the known section tags.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionHero, SectionText, SectionFAQ, SectionCTA,
		SectionFeatures, SectionStats, SectionTestimonial:
		return true
	default:
		return false
	}
}

// FAQ is one question/answer pair of an faq section.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is one structured block of a page, consumed by an external
// presentational renderer.
type Section struct {
	// ID identifies the section within the page.
	ID string `json:"id"`

	// Type is the render tag. Unknown types degrade to text, never error.
	Type SectionType `json:"type"`

	// Heading is the section heading, empty for headingless blocks.
	Heading string `json:"heading,omitempty"`

	// Content is the section body.
	Content string `json:"content"`

	// Data carries type-specific payload, e.g. the faq list.
	Data map[string]any `json:"data,omitempty"`
}

// NewSection builds a section, degrading an unknown type to text so a
// renderer never sees a tag it cannot handle.
func NewSection(id string, typ SectionType, heading, body string, data map[string]any) Section {
	if !typ.IsValid() {
		typ = SectionText
	}
	return Section{ID: id, Type: typ, Heading: heading, Content: body, Data: data}
}

// Sections builds the structured section list for a page: hero, service
// definition, legal grounding, service scope, FAQ and CTA. Like Render it
// is a pure transform of the reference data.
func (e *Engine) Sections(serviceID string, provinceID int, districtSlug string) ([]Section, error) {
	service, ok := e.catalog.ByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("build sections: unknown service %q", serviceID)
	}
	province, err := e.graph.Province(provinceID)
	if err != nil {
		return nil, fmt.Errorf("build sections: %w", err)
	}
	var district *geo.District
	if districtSlug != "" {
		d, ok := province.District(districtSlug)
		if !ok {
			return nil, fmt.Errorf("build sections: province %s has no district %q", province.Slug, districtSlug)
		}
		district = &d
	}

	location := province.Name
	if district != nil {
		location = district.Name + ", " + province.Name
	}
	shortLocation := province.Name
	if district != nil {
		shortLocation = district.Name
	}

	var neighborNames []string
	for _, n := range e.graph.Neighbors(province.ID) {
		neighborNames = append(neighborNames, n.Name)
	}

	sections := []Section{
		e.heroSection(service, location),
		e.definitionSection(service, province, shortLocation),
		e.legalSection(service),
		e.scopeSection(province, neighborNames),
		e.faqSection(service, shortLocation),
		e.ctaSection(service, location),
	}
	return sections, nil
}

func (e *Engine) heroSection(s *catalog.Service, location string) Section {
	return NewSection("hero", SectionHero,
		location+" "+s.Name,
		fmt.Sprintf("%s bolgesinde profesyonel %s hizmeti. 6331 sayili Is Sagligi ve Guvenligi Kanunu kapsaminda tum yasal gereksinimleri karsiliyoruz.",
			location, strings.ToLower(s.Name)),
		map[string]any{
			"cta_text":  "Ucretsiz Teklif Alin",
			"cta_phone": e.company.Phone,
		})
}

func (e *Engine) definitionSection(s *catalog.Service, p *geo.Province, location string) Section {
	body := fmt.Sprintf(`%s, %s.

%s bolgesinde faaliyet gosteren isletmeler icin %s hizmeti sunuyoruz. Deneyimli ekibimiz ve guncel mevzuat bilgisiyle isletmenizin tum ISG ihtiyaclarini karsiliyoruz.

### Neden %s'da Bizi Tercih Etmelisiniz?

- **Yerel Uzmanlik**: %s ve cevre illerde yillardir hizmet veriyoruz
- **Hizli Mudahale**: Bolgesel yakinlik sayesinde acil durumlarda aninda yaninizdayiz
- **Mevzuat Uyumu**: Tum yasal gereksinimleri eksiksiz karsiliyoruz
- **Uygun Fiyat**: Bolgesel fiyat avantaji sunuyoruz`,
		s.Name, s.ShortDescription, location, strings.ToLower(s.Name), location, p.Name)

	return NewSection("hizmet_tanimi", SectionText,
		fmt.Sprintf("%s'da %s Hizmeti", location, s.Name), body, nil)
}

func (e *Engine) legalSection(s *catalog.Service) Section {
	refs := strings.Join(s.LegalReferences, ", ")
	if refs == "" {
		refs = "6331 sayili Kanun"
	}
	body := fmt.Sprintf(`### Yasal Dayanak

%s hizmeti, %s kapsaminda duzenlenmistir.

> **Onemli**: Yasal yukumluluklerin yerine getirilmemesi durumunda idari para cezalari uygulanmaktadir.`,
		s.Name, refs)

	return NewSection("yasal_zorunluluk", SectionText, "Yasal Zorunluluklar", body, nil)
}

func (e *Engine) scopeSection(p *geo.Province, neighborNames []string) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** merkezli olarak asagidaki illere hizmet vermekteyiz:\n\n", p.Name)
	fmt.Fprintf(&b, "- **%s**: Tum ilceler dahil\n", p.Name)
	if len(neighborNames) > 0 {
		fmt.Fprintf(&b, "- **Komsu Iller**: %s\n", strings.Join(neighborNames, ", "))
	}
	b.WriteString("\nHer bolgedeki isletmelere ayni kalitede, uygun fiyatli hizmet sunuyoruz.")

	return NewSection("hizmet_kapsami", SectionText, "Hizmet Bolgelerimiz", b.String(), nil)
}

func (e *Engine) faqSection(s *catalog.Service, location string) Section {
	var faqs []FAQ
	for i, question := range s.Keywords.LongTail {
		if i == 5 {
			break
		}
		faqs = append(faqs, FAQ{
			Question: capitalize(question) + "?",
			Answer:   faqAnswer(question, location, s),
		})
	}
	faqs = append(faqs, FAQ{
		Question: fmt.Sprintf("%s'da OSGB hizmeti nasil alabilirim?", location),
		Answer: fmt.Sprintf("%s bolgesinde OSGB hizmeti almak icin bizi arayin veya iletisim formumuzu doldurun. 24 saat icinde size donuyoruz.",
			location),
	})

	return NewSection("sss", SectionFAQ, "Sikca Sorulan Sorular", "",
		map[string]any{"faqs": faqs})
}

// faqAnswer picks a canned answer by question intent.
func faqAnswer(question, location string, s *catalog.Service) string {
	name := strings.ToLower(s.Name)
	switch {
	case strings.Contains(question, "fiyat"):
		return fmt.Sprintf("%s bolgesinde %s fiyatlari isletme buyuklugu ve tehlike sinifina gore degisir. Ucretsiz kesif ve fiyat teklifi icin bizi arayin.", location, name)
	case strings.Contains(question, "zorunlu"):
		return fmt.Sprintf("Evet, 6331 sayili Kanun kapsaminda belirli kriterleri karsilayan tum isletmeler icin %s zorunludur.", name)
	case strings.Contains(question, "nasil"):
		return fmt.Sprintf("%s hizmeti profesyonel OSGB uzmanlarimiz tarafindan mevzuata uygun sekilde verilmektedir. Detayli bilgi icin bizi arayin.", s.Name)
	default:
		return fmt.Sprintf("%s bolgesinde %s hizmeti hakkinda detayli bilgi almak icin bizimle iletisime gecin.", location, name)
	}
}

func (e *Engine) ctaSection(s *catalog.Service, location string) Section {
	return NewSection("iletisim_cta", SectionCTA,
		fmt.Sprintf("%s'da %s Icin Hemen Arayin", location, s.Name),
		fmt.Sprintf("Profesyonel %s hizmeti icin ucretsiz kesif ve fiyat teklifi alin.", strings.ToLower(s.Name)),
		map[string]any{
			"primary_cta":   "Hemen Arayin",
			"secondary_cta": "Teklif Formu",
			"phone":         e.company.Phone,
		})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
