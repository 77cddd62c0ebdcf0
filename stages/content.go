package stages

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/prosektorweb/sitegen/content"
	"github.com/prosektorweb/sitegen/pipeline"
)

// contentStage writes the four base site pages from the catalog and the
// company profile. Location landing pages are not written here; they are
// part of the page plan the seo stage produces.
func (env *Env) contentStage(_ context.Context, st *pipeline.State) (any, error) {
	input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput)
	if !ok {
		return nil, fmt.Errorf("content: input output missing")
	}

	home, err := env.Graph.Province(env.HomeProvinceID)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	var pages []pipeline.PageContent
	totalWords := 0
	totalReadability := 0.0

	for _, ref := range input.Pages {
		sections := env.basePageSections(ref, input, home.Name)
		text := sectionText(sections)
		words := len(strings.Fields(text))
		score := readability(text)

		pages = append(pages, pipeline.PageContent{
			Slug:            ref.Slug,
			Type:            ref.Type,
			Title:           ref.Name,
			MetaTitle:       fmt.Sprintf("%s | %s", ref.Name, input.Company.Name),
			MetaDescription: env.basePageMeta(ref, input, home.Name),
			Sections:        sections,
			Keywords:        basePageKeywords(ref, home.Name),
			WordCount:       words,
			Readability:     score,
		})
		totalWords += words
		totalReadability += score
	}

	avg := 0.0
	if len(pages) > 0 {
		avg = math.Round(totalReadability/float64(len(pages))*10) / 10
	}

	return &pipeline.ContentOutput{
		ProjectID:          input.ProjectID,
		Pages:              pages,
		TotalWordCount:     totalWords,
		AverageReadability: avg,
	}, nil
}

func (env *Env) basePageSections(ref pipeline.PageRef, input *pipeline.InputOutput, homeName string) []content.Section {
	company := input.Company
	switch ref.Type {
	case pipeline.PageHomepage:
		return []content.Section{
			content.NewSection("hero", content.SectionHero,
				fmt.Sprintf("%s ile Guvenli Isyerleri", company.Name),
				fmt.Sprintf("%s, %s merkezli olarak isletmelere is sagligi ve guvenligi hizmetleri sunar. "+
					"Isyeri hekimliginden risk degerlendirmesine kadar tum yasal yukumluluklerinizi "+
					"tek catida karsilayin. Deneyimli uzman kadromuz her tehlike sinifindan isletmeye "+
					"mevzuata uygun, surdurulebilir cozumler uretir.",
					company.Name, homeName),
				map[string]any{"cta_text": "Ucretsiz Teklif Alin", "cta_phone": env.Company.Phone}),
			content.NewSection("surec", content.SectionFeatures,
				"Nasil Calisiyoruz",
				"Hizmet surecimiz uc adimda ilerler. Once isyerinizde ucretsiz kesif yapiyoruz. "+
					"Kesifte tehlike sinifinizi, calisan sayinizi ve mevcut eksiklerinizi tespit ediyoruz. "+
					"Ardindan isletmenize ozel bir hizmet plani hazirliyoruz. Plani onayladiginizda "+
					"uzmanlarimiz sahada calismaya baslar. Tum ziyaretler raporlanir ve ISG-KATIP "+
					"uzerinden resmi kayitlara islenir. Sozlesme suresince danismanlariniz her sorunuzda yaninizdadir.",
				map[string]any{"items": []string{"Ucretsiz kesif", "Ozel hizmet plani", "Sahada uygulama ve raporlama"}}),
			env.servicesFeatureSection("one-cikan-hizmetler", "One Cikan Hizmetlerimiz"),
			content.NewSection("cta", content.SectionCTA,
				"Yasal Yukumluluklerinizi Erteleyin Demeyin",
				"6331 sayili Kanun kapsamindaki zorunluluklariniz icin bugun ucretsiz kesif talep edin. "+
					"Uzmanlarimiz 24 saat icinde size doner. Denetim oncesi eksiklerinizi birlikte kapatalim.",
				map[string]any{"primary_cta": "Hemen Arayin", "phone": env.Company.Phone}),
		}
	case pipeline.PageAbout:
		description := company.Description
		if description == "" {
			description = fmt.Sprintf("%s, is sagligi ve guvenligi alaninda hizmet veren bir OSGB'dir.", company.Name)
		}
		return []content.Section{
			content.NewSection("hakkimizda", content.SectionText, "Hakkimizda",
				fmt.Sprintf("%s\n\n%s merkezli ekibimiz, cevre illerdeki isletmelere de ayni kalitede hizmet verir. "+
					"Calisma ve Sosyal Guvenlik Bakanligi yetkilendirmesiyle faaliyet gosteriyoruz. "+
					"Onceligimiz, isyerlerinde olusabilecek riskleri kaynaginda onlemek ve calisan sagligini korumaktir.",
					description, homeName), nil),
			content.NewSection("ekip", content.SectionText, "Ekibimiz",
				"Kadromuzda isyeri hekimleri, A, B ve C sinifi is guvenligi uzmanlari ve diger saglik personeli bulunur. "+
					"Her danismanimiz kendi uzmanlik alaninda duzenli egitim alir ve mevzuat degisikliklerini yakindan takip eder. "+
					"Sektor deneyimimiz imalattan insaata, gidadan lojistige kadar genis bir yelpazeyi kapsar. "+
					"Isletmenize atanan ekip sozlesme suresince degismez. Boylece isyerinizi taniyan, "+
					"gecmis raporlara hakim danismanlarla calisirsiniz.", nil),
			content.NewSection("degerler", content.SectionFeatures, "Degerlerimiz",
				"Mevzuata tam uyum, seffaf raporlama ve hizli saha mudahalesi calisma bicimimizin temelidir. "+
					"Raporlarimiz acik ve anlasilirdir. Tespit ettigimiz her eksik icin somut bir cozum onerisi sunariz.",
				map[string]any{"items": []string{"Mevzuat uyumu", "Seffaf raporlama", "Hizli mudahale"}}),
		}
	case pipeline.PageServices:
		return []content.Section{
			content.NewSection("hizmet-giris", content.SectionText, "Hizmet Yaklasimimiz",
				"6331 sayili Kanun, calisan sayisi ve tehlike sinifina gore her isletmeye farkli yukumlulukler getirir. "+
					"Zorunlu hizmetler isyeri hekimi, is guvenligi uzmani, risk degerlendirmesi ve temel ISG egitimini kapsar. "+
					"Bunlarin yaninda acil durum plani, saglik taramasi ve ilkyardim egitimi gibi tamamlayici hizmetler sunariz. "+
					"Hangi hizmetlerin sizin icin zorunlu oldugunu kesif sirasinda netlestiririz. "+
					"Asagida sundugumuz hizmetlerin tam listesini bulabilirsiniz.", nil),
			env.servicesFeatureSection("hizmet-listesi", "Hizmetlerimiz"),
			content.NewSection("cta", content.SectionCTA,
				"Size Uygun Paketi Birlikte Belirleyelim",
				"Isletmenizin tehlike sinifina ve calisan sayisina gore dogru hizmet kapsamini birlikte planlayalim. "+
					"Paket fiyatlandirmasi icin teklif formunu doldurmaniz yeterlidir.",
				map[string]any{"primary_cta": "Teklif Formu"}),
		}
	case pipeline.PageContact:
		return []content.Section{
			content.NewSection("iletisim-bilgi", content.SectionText, "Iletisim Bilgilerimiz",
				fmt.Sprintf("Merkez ofisimiz %s sehrindedir. Calisma saatlerimiz hafta ici 09:00 ile 18:00 arasindadir. "+
					"Acil durumlarda telefon hattimiz hafta sonu da acik kalir. "+
					"Telefonla ulasamadiginizda e-posta gonderebilir veya iletisim formunu doldurabilirsiniz. "+
					"Tum basvurulara bir is gunu icinde donus yapariz. "+
					"Yerinde kesif talepleri icin randevu olusturuyoruz ve kesif ucretsizdir.", homeName), nil),
			content.NewSection("iletisim", content.SectionCTA, "Bize Ulasin",
				fmt.Sprintf("Telefon, e-posta veya iletisim formu uzerinden bize ulasabilirsiniz. "+
					"%s ve cevre illerde yerinde kesif hizmetimiz ucretsizdir.", homeName),
				map[string]any{"phone": env.Company.Phone, "email": env.Company.Email}),
		}
	default:
		return []content.Section{
			content.NewSection(slugify(ref.Name), content.SectionText, ref.Name,
				fmt.Sprintf("%s sayfasi icerigi.", ref.Name), nil),
		}
	}
}

// servicesFeatureSection lists the configured services as feature cards.
func (env *Env) servicesFeatureSection(id, heading string) content.Section {
	var b strings.Builder
	items := make([]map[string]string, 0, len(env.services))
	for _, s := range env.services {
		fmt.Fprintf(&b, "**%s**: %s.\n\n", s.Name, s.ShortDescription)
		items = append(items, map[string]string{
			"title":       s.Name,
			"description": s.ShortDescription,
			"url":         "/" + s.Slug + "/",
		})
	}
	return content.NewSection(id, content.SectionFeatures, heading,
		strings.TrimSpace(b.String()), map[string]any{"items": items})
}

func (env *Env) basePageMeta(ref pipeline.PageRef, input *pipeline.InputOutput, homeName string) string {
	switch ref.Type {
	case pipeline.PageHomepage:
		return fmt.Sprintf("%s: %s merkezli OSGB. Isyeri hekimi, is guvenligi uzmani, risk analizi ve ISG egitimi hizmetleri.",
			input.Company.Name, homeName)
	case pipeline.PageAbout:
		return fmt.Sprintf("%s hakkinda: ekibimiz, yetkilerimiz ve calisma bicimimiz.", input.Company.Name)
	case pipeline.PageServices:
		return fmt.Sprintf("%s hizmet katalogu: zorunlu ISG hizmetleri ve tamamlayici paketler.", input.Company.Name)
	case pipeline.PageContact:
		return fmt.Sprintf("%s iletisim bilgileri. %s ve cevre illerde ucretsiz kesif.", input.Company.Name, homeName)
	default:
		return ref.Name
	}
}

func basePageKeywords(ref pipeline.PageRef, homeName string) []string {
	city := strings.ToLower(homeName)
	switch ref.Type {
	case pipeline.PageHomepage:
		return []string{city + " osgb", "osgb hizmetleri", city + " is guvenligi"}
	case pipeline.PageServices:
		return []string{"osgb hizmetleri", city + " isg hizmetleri"}
	default:
		return nil
	}
}

func sectionText(sections []content.Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s.Heading)
		b.WriteString(". ")
		b.WriteString(s.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// readability scores text on sentence length alone: short sentences read
// easier. Deliberately crude, but deterministic and monotonic.
func readability(text string) float64 {
	words := len(strings.Fields(text))
	sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	if sentences == 0 {
		sentences = 1
	}
	avg := float64(words) / float64(sentences)
	return clamp100(110 - 2.5*avg)
}
