package content

import "github.com/prosektorweb/sitegen/catalog"

// templates maps service ids to their hand-written page templates. Services
// without an entry fall back to a template synthesized from catalog data,
// see genericTemplate.
var templates = map[string]*Template{
	"isyeri-hekimi":       isyeriHekimiTemplate,
	"is-guvenligi-uzmani": isGuvenligiUzmaniTemplate,
	"risk-analizi":        riskAnaliziTemplate,
	"isg-egitimi":         isgEgitimiTemplate,
}

// ForService returns the template for a service, synthesizing a generic one
// when no hand-written template exists.
func ForService(s *catalog.Service) *Template {
	if t, ok := templates[s.ID]; ok {
		return t
	}
	return genericTemplate(s)
}

// genericTemplate assembles a serviceable page from catalog fields alone.
// Hand-written templates beat it on depth; it exists so a newly added
// catalog entry gets pages without waiting for editorial work.
func genericTemplate(s *catalog.Service) *Template {
	return &Template{
		ServiceID: s.ID,
		Sections: []TemplateSection{
			{
				ID:    "hero",
				Title: "Hero",
				Template: "# {{bolge}} " + s.Name + "\n\n" +
					"{{bolge}} bolgesinde profesyonel **" + s.Name + "** hizmeti sunuyoruz.\n" +
					s.ShortDescription + ".\n\n" +
					"[Teklif Alin](#iletisim) | [Hemen Arayin](tel:{{telefon}})",
			},
			{
				ID:    "hizmet_tanimi",
				Title: "Hizmet Tanimi",
				Template: "## {{bolge}}'da " + s.Name + "\n\n" +
					s.ShortDescription + ". 6331 sayili Is Sagligi ve Guvenligi Kanunu " +
					"kapsamindaki yukumluluklerinizi eksiksiz karsiliyoruz.\n\n" +
					"{{sehir}} ve {{komsu_iller}} bolgesinde hizmet veriyoruz.",
			},
			{
				ID:    "sss",
				Title: "Sikca Sorulan Sorular",
				Template: "## {{sehir}} " + s.Name + " Sikca Sorulan Sorular\n\n" +
					"### " + s.Name + " zorunlu mu?\n\n" +
					"Yasal dayanagi ve isyerinize uygulanip uygulanmadigini ogrenmek icin bizi arayin.\n\n" +
					"### {{sehir}}'da " + s.Name + " ucreti ne kadar?\n\n" +
					"Isyeri buyuklugu ve tehlike sinifina gore degisir. **Ucretsiz kesif** ile size ozel fiyat veriyoruz.",
			},
			{
				ID:    "iletisim_cta",
				Title: "CTA",
				Template: "## {{bolge}}'da " + s.Name + " Icin Bizi Arayin\n\n" +
					"- {{sehir}} ve {{komsu_iller}} hizmet bolgemiz\n" +
					"- Rekabetci fiyatlar ve hizli baslangic\n\n" +
					"**{{telefon}}**",
			},
		},
	}
}

var isyeriHekimiTemplate = &Template{
	ServiceID: "isyeri-hekimi",
	Sections: []TemplateSection{
		{
			ID:    "hero",
			Title: "Hero",
			Template: `# {{bolge}} Isyeri Hekimligi Hizmeti

{{bolge}} bolgesinde profesyonel **isyeri hekimligi** hizmeti sunuyoruz.
6331 sayili Is Sagligi ve Guvenligi Kanunu kapsaminda tum yasal gereksinimleri karsiliyoruz.

[Ucretsiz Teklif Alin](#iletisim) | [Hemen Arayin](tel:{{telefon}})`,
		},
		{
			ID:    "hizmet_tanimi",
			Title: "Hizmet Tanimi",
			Template: `## {{bolge}}'da Isyeri Hekimi Ne Yapar?

Isyeri hekimi, isyerinde calisanlarin sagligini korumak ve gelistirmek amaciyla gorev yapan is sagligi uzmanidir.

### Isyeri Hekiminin Gorevleri

- **Ise Giris Muayenesi**: Yeni ise alinan calisanlarin saglik kontrolu
- **Periyodik Muayene**: Duzenli araliklarla calisan saglik takibi
- **Is Kazasi Takibi**: Kaza sonrasi saglik degerlendirmesi
- **Meslek Hastaligi Tespiti**: Ise bagli hastaliklarin onlenmesi
- **Saglik Gozetimi**: Calisanlarin genel saglik durumunun izlenmesi
- **Saglik Egitimi**: Calisanlara saglik konusunda bilgilendirme

{{sehir}} ve {{komsu_iller}} bolgesinde bu hizmetlerin tamamini sunuyoruz.`,
		},
		{
			ID:    "yasal_zorunluluk",
			Title: "Yasal Zorunluluk",
			Template: `## Isyeri Hekimi Zorunlu mu?

Evet, **6331 sayili Is Sagligi ve Guvenligi Kanunu**'na gore belirli sartlari tasiyan tum isyerleri isyeri hekimi calistirmak zorundadir.

### {{yil}} Yilinda Isyeri Hekimi Bulundurmama Cezasi

- **Ilk ihlal**: Idari para cezasi
- **Tekrar ihlal**: Cezalar katlanarak artar
- **Is kazasi durumunda**: Cezai sorumluluk ve tazminat

> {{sehir}}'da isletmenizin tehlike sinifini ogrenmek ve yasal yukumlulugunuzu belirlemek icin bizi arayin.`,
		},
		{
			ID:    "hizmet_kapsami",
			Title: "Hizmet Bolgelerimiz",
			Template: `## {{sehir}}'da Isyeri Hekimi Hizmeti Verdigimiz Bolgeler

**{{sehir}}** merkezinden baslayarak asagidaki bolgelere isyeri hekimligi hizmeti veriyoruz:

### {{sehir}} Ilceleri
Tum {{sehir}} ilcelerine hizmet vermekteyiz. Merkez ilcelere ayni gun, dis ilcelere 24 saat icinde ulasim saglanmaktadir.

### Komsu Iller
- {{komsu_iller}}

Bolgesel avantajimiz sayesinde **hizli mudahale** ve **uygun fiyat** garantisi sunuyoruz.`,
		},
		{
			ID:    "fiyatlandirma_bilgi",
			Title: "Fiyatlandirma",
			Template: `## {{sehir}} Isyeri Hekimi Fiyatlari {{yil}}

Isyeri hekimi fiyatlari asagidaki faktorlere gore belirlenir:

- Isyerinin **tehlike sinifi**
- **Calisan sayisi**
- Isyerinin **konumu**
- Talep edilen **ek hizmetler**

### Neden Bizi Tercih Etmelisiniz?

1. **Seffaf Fiyatlandirma**: Gizli maliyet yok
2. **Esnek Odeme**: Aylik veya yillik odeme secenekleri
3. **Toplu Indirim**: Birden fazla hizmet alindiginda indirim
4. **Ucretsiz Kesif**: Fiyat teklifi icin ucretsiz isyeri ziyareti

{{bolge}} bolgesinde **ucretsiz kesif** ve fiyat teklifi almak icin bizi arayin.`,
		},
		{
			ID:    "sss",
			Title: "Sikca Sorulan Sorular",
			Template: `## {{sehir}} Isyeri Hekimi Hakkinda Sikca Sorulan Sorular

### Isyeri hekimi kac calisana gerekir?

Tehlike sinifina bagli olarak genellikle **50 ve uzeri calisan** sayisina ulasan isyerleri isyeri hekimi bulundurmak zorundadir. Cok tehlikeli isyerlerinde bu sinir daha dusuktur.

### {{sehir}}'da isyeri hekimi fiyati ne kadar?

Fiyatlar isyeri buyuklugu ve tehlike sinifina gore degisir. **Ucretsiz kesif** ile size ozel fiyat teklifi sunuyoruz.

### Isyeri hekimi yerine OSGB'den hizmet alabilir miyim?

Evet, kendi hekiminizi istihdam etmek yerine yetkili bir **OSGB**'den hizmet alabilirsiniz. Bu genellikle daha ekonomiktir.

### Isyeri hekimi olmadan is kazasi olursa ne olur?

Isyeri hekimi olmadan calisirken is kazasi meydana gelirse, isveren agir cezai ve mali sorumluluk altina girer. **SGK rucu davasi** ve **ceza davasi** riski vardir.`,
		},
		{
			ID:    "iletisim_cta",
			Title: "Iletisim CTA",
			Template: `## {{bolge}}'da Isyeri Hekimi Icin Hemen Bizi Arayin

{{firma}} olarak {{sehir}} ve cevresinde profesyonel isyeri hekimligi hizmeti sunuyoruz.

### Neden Beklemeyin?

- Yasal yukumluluklerinizi yerine getirin
- Is kazasi ve meslek hastaligi riskini azaltin
- Calisanlarinizin sagligini koruyun
- Olasi cezalardan kacinin

**Ucretsiz kesif ve fiyat teklifi icin:**

[{{telefon}}](tel:{{telefon}}) | [{{email}}](mailto:{{email}})

veya asagidaki formu doldurun, **24 saat icinde** size donelim.`,
		},
	},
}

var isGuvenligiUzmaniTemplate = &Template{
	ServiceID: "is-guvenligi-uzmani",
	Sections: []TemplateSection{
		{
			ID:    "hero",
			Title: "Hero",
			Template: `# {{bolge}} Is Guvenligi Uzmani

{{bolge}} bolgesinde **A, B ve C sinifi** is guvenligi uzmanligi hizmeti.
Isyerinizin tehlike sinifina uygun uzman destegi sunuyoruz.

[Teklif Alin](#iletisim) | [Arayin](tel:{{telefon}})`,
		},
		{
			ID:    "uzman_siniflari",
			Title: "Uzman Siniflari",
			Template: `## Is Guvenligi Uzmani Siniflari

Is guvenligi uzmanlari A, B ve C olmak uzere uc sinifa ayrilir. Hangi sinif uzman gerektigini **isyerinizin tehlike sinifi** belirler.

### A Sinifi Is Guvenligi Uzmani
- **Cok tehlikeli** isyerlerinde gorev yapar
- Maden, kimya, insaat gibi sektorler

### B Sinifi Is Guvenligi Uzmani
- **Tehlikeli** isyerlerinde gorev yapar
- Uretim, tekstil, gida gibi sektorler

### C Sinifi Is Guvenligi Uzmani
- **Az tehlikeli** isyerlerinde gorev yapar
- Ofis, perakende, hizmet sektoru

{{sehir}}'da her uc sinifta da uzman kadromuzla hizmet veriyoruz.`,
		},
		{
			ID:    "tehlike_siniflari",
			Title: "Tehlike Siniflari",
			Template: `## Isyerinizin Tehlike Sinifi Nedir?

Isyerlerinin tehlike siniflari **NACE koduna** gore belirlenir.

### Az Tehlikeli Isyerleri
Ofisler, bankalar, perakende magazalar, egitim kurumlari, hizmet sektoru.

### Tehlikeli Isyerleri
Uretim tesisleri, gida isletmeleri, tekstil fabrikalari, depolama tesisleri.

### Cok Tehlikeli Isyerleri
Maden ocaklari, insaat santiyeleri, kimya fabrikalari, metal isleme tesisleri.

> {{sehir}}'da isyerinizin tehlike sinifini **ucretsiz** olarak belirliyoruz.`,
		},
		{
			ID:    "gorev_ve_yetkiler",
			Title: "Gorev ve Yetkiler",
			Template: `## Is Guvenligi Uzmaninin Gorevleri

### Risk Degerlendirmesi
Isyerindeki tehlikelerin tespiti, risk puanlama ve onlem onerilerinin hazirlanmasi.

### Egitim ve Bilgilendirme
Calisan ISG egitimleri, acil durum tatbikatlari, guvenlik bilgilendirmeleri.

### Denetim ve Takip
Periyodik isyeri denetimleri, onlemlerin takibi, uygunsuzluk raporlama.

### Dokumantasyon
Risk analizi raporu, acil durum plani, ISG prosedurlerinin hazirlanmasi.

{{bolge}} bolgesinde tum bu hizmetleri kapsamli sekilde sunuyoruz.`,
		},
		{
			ID:    "fiyatlandirma_bilgi",
			Title: "Fiyatlandirma",
			Template: `## {{sehir}} Is Guvenligi Uzmani Fiyatlari {{yil}}

### Fiyati Etkileyen Faktorler

- Calisan sayisi
- Isyeri lokasyonu
- Ziyaret sikligi
- Ek hizmetler (egitim, dokumantasyon)

**{{sehir}}'da ucretsiz kesif** ile isyerinize ozel fiyat teklifi alin.`,
		},
		{
			ID:    "sss",
			Title: "SSS",
			Template: `## {{sehir}} Is Guvenligi Uzmani SSS

### Hangi sinif uzman gerekir?

Isyerinizin **tehlike sinifina** gore: az tehlikeli C sinifi, tehlikeli B sinifi, cok tehlikeli A sinifi uzman gerektirir.

### Uzman yerine OSGB'den hizmet alabilir miyim?

Evet, tam zamanli uzman istihdam etmek yerine OSGB'den dis kaynak hizmeti alabilirsiniz. Bu genellikle **daha ekonomik** bir cozumdur.

### {{sehir}}'da is guvenligi uzmani nasil bulurum?

{{sehir}} bolgesinde yetkili OSGB olarak A, B ve C sinifi is guvenligi uzmanligi hizmeti veriyoruz. Hemen bizi arayin.`,
		},
		{
			ID:    "iletisim_cta",
			Title: "CTA",
			Template: `## {{bolge}}'da Is Guvenligi Uzmani Icin Bizi Arayin

- A, B, C sinifi uzman kadrosu
- {{sehir}} ve {{komsu_iller}} hizmet alani
- Rekabetci fiyatlar
- Hizli baslangic

**{{telefon}}**`,
		},
	},
}

var riskAnaliziTemplate = &Template{
	ServiceID: "risk-analizi",
	Sections: []TemplateSection{
		{
			ID:    "hero",
			Title: "Hero",
			Template: `# {{bolge}} Risk Analizi ve Degerlendirmesi

{{bolge}} bolgesinde profesyonel **risk degerlendirmesi** hizmeti.
6331 sayili Kanun kapsaminda zorunlu risk analizi hazirliyoruz.

[Teklif Alin](#iletisim)`,
		},
		{
			ID:    "hizmet_tanimi",
			Title: "Risk Analizi Nedir",
			Template: `## Risk Analizi Nedir?

Risk analizi, isyerindeki tehlikelerin belirlenmesi ve bu tehlikelerden kaynaklanabilecek risklerin degerlendirilmesi surecidir.

### Risk Analizi Neden Onemli?

1. **Yasal Zorunluluk**: 6331 sayili Kanun geregi tum isyerleri risk analizi yapmak zorunda
2. **Is Kazalarini Onleme**: Tehlikeleri onceden tespit ederek kazalari onler
3. **Mali Koruma**: Is kazasi tazminatlari ve cezalardan korur
4. **Calisan Guvenligi**: Calisanlarin guvenli bir ortamda calismasini saglar

{{sehir}} bolgesinde isletmeniz icin kapsamli risk analizi hazirliyoruz.`,
		},
		{
			ID:    "risk_metodolojisi",
			Title: "Metodoloji",
			Template: `## Risk Degerlendirmesi Nasil Yapilir?

### 1. Tehlike Tanimlama
Isyeri gezisi ve gozlem, calisan gorusmeleri, makine ve ekipman incelemesi, kimyasal madde envanteri.

### 2. Risk Belirleme
Her tehlike icin risk puanlama, olasilik x siddet matrisi, onceliklendirme.

### 3. Onlem Planlama
Mevcut onlemlerin degerlendirmesi, ek onlem onerileri, sorumluluk atama, termin belirleme.

### 4. Dokumantasyon
Risk analizi raporu, aksiyon plani, takip formlari.

{{sehir}}'da uzman ekibimizle bu sureci profesyonelce yonetiyoruz.`,
		},
		{
			ID:    "surec_adimlari",
			Title: "Sektor Bazli Risk Analizi",
			Template: `## Sektore Ozel Risk Analizi

Her sektorun kendine ozgu riskleri vardir. {{sehir}} bolgesinde asagidaki sektorlere ozel risk analizi yapiyoruz:

### Insaat Sektoru
Yuksekte calisma riskleri, iskele guvenligi, elektrik carpmasi, malzeme dusmesi.

### Uretim / Fabrika
Makine guvenligi, kimyasal maddeler, gurultu maruziyeti, ergonomik riskler.

### Depo / Lojistik
Forklift guvenligi, raf sistemleri, yukleme bosaltma, trafik duzeni.

### Ofis / Hizmet
Ergonomi, elektrik guvenligi, yangin riski, psikososyal riskler.`,
		},
		{
			ID:    "sss",
			Title: "SSS",
			Template: `## {{sehir}} Risk Analizi Sikca Sorulan Sorular

### Risk analizi zorunlu mu?

**Evet**, 6331 sayili Kanun'un 10. maddesi geregi tum isverenler risk degerlendirmesi yapmak zorundadir.

### Risk analizi kac yilda bir yenilenmeli?

Az tehlikeli isyerleri 6 yilda bir, tehlikeli isyerleri 4 yilda bir, cok tehlikeli isyerleri 2 yilda bir yenilemelidir. Ayrica is kazasi, degisiklik veya yeni tehlike durumunda yenilenmeli.

### Risk analizi ucreti ne kadar?

{{sehir}}'da risk analizi ucreti isyeri buyuklugu, sektor ve tehlike sinifina gore degisir. **Ucretsiz kesif** ile size ozel fiyat veriyoruz.

### Risk analizi yapmamanin cezasi nedir?

{{yil}} yilinda risk analizi yapmayan isverenler idari para cezasi ile karsilasir. Is kazasi durumunda ceza katlanir.`,
		},
		{
			ID:    "iletisim_cta",
			Title: "CTA",
			Template: `## {{bolge}}'da Risk Analizi Yaptirin

- Uzman muhendis kadrosu
- Sektore ozel analiz
- Detayli raporlama
- Aksiyon takibi

**{{telefon}}** - Ucretsiz kesif icin arayin`,
		},
	},
}

var isgEgitimiTemplate = &Template{
	ServiceID: "isg-egitimi",
	Sections: []TemplateSection{
		{
			ID:    "hero",
			Title: "Hero",
			Template: `# {{bolge}} Is Sagligi ve Guvenligi Egitimi

{{bolge}} bolgesinde **is sagligi ve guvenligi egitimi** hizmeti sunuyoruz.
6331 sayili Kanun kapsaminda zorunlu ISG egitimlerinizi eksiksiz tamamlayin.

[Egitim Teklifi Alin](#iletisim) | [Hemen Arayin](tel:{{telefon}})`,
		},
		{
			ID:    "hizmet_tanimi",
			Title: "Hizmet Tanimi",
			Template: `## {{bolge}}'da ISG Egitimi Nedir?

Is Sagligi ve Guvenligi egitimi, calisanlarin is kazalari ve meslek hastaliklarindan korunmasi icin zorunlu olan bilgilendirme programidir.

### Egitim Kapsamimiz

- **Temel ISG Egitimi**: Tum calisanlar icin zorunlu genel egitim
- **Isbasi Egitimi**: Yeni ise baslayanlar ve is degisikligi yapanlar icin
- **Periyodik Egitim**: Belirli araliklarla tekrarlanan yenileme egitimi
- **Ozel Risk Egitimi**: Tehlikeli isler icin ek egitimler
- **Yonetici Egitimi**: Isveren ve yonetici sorumluluklari

{{sehir}} ve {{komsu_iller}} bolgesinde tum egitim turlerini isyerinizde veya online olarak veriyoruz.`,
		},
		{
			ID:    "egitim_turleri",
			Title: "Egitim Turleri ve Sureleri",
			Template: `## ISG Egitim Turleri ve Sureleri

Tehlike sinifina gore egitim sureleri degisir: az tehlikeli en az 8 saat ve 3 yilda bir, tehlikeli en az 12 saat ve 2 yilda bir, cok tehlikeli en az 16 saat ve yilda bir yenileme.

### Egitim Konulari

1. **Genel ISG Bilgisi**: Is sagligi ve guvenligi mevzuati
2. **Risk ve Tehlikeler**: Isyerine ozel riskler ve onlemler
3. **Acil Durum**: Yangin, deprem, ilkyardim prosedurleri
4. **KKD Kullanimi**: Kisisel koruyucu donanim kullanimi
5. **Ergonomi**: Dogru calisma pozisyonlari
6. **Kimyasal Guvenlik**: Kimyasal maddelerle calisma

> {{sehir}}'da isyerinizin tehlike sinifina uygun egitim programi icin bizi arayin.`,
		},
		{
			ID:    "sertifika_bilgi",
			Title: "Sertifika Bilgisi",
			Template: `## ISG Egitim Sertifikasi

Egitim sonunda calisanlara **ISG Egitim Sertifikasi** verilir. Sertifikalar **ISG-KATIP** sistemine kayit edilir ve denetimde ibraz edilebilir.

> {{yil}} yilinda egitimsiz calisan calistirmak idari para cezasi gerektirir.`,
		},
		{
			ID:    "sss",
			Title: "SSS",
			Template: `## {{sehir}} ISG Egitimi Sikca Sorulan Sorular

### ISG egitimi zorunlu mu?

**Evet**, 6331 sayili Kanun geregi tum isverenler calisanlarina ISG egitimi vermek zorundadir. Egitim verilmeden calisan calistirilamaz.

### ISG egitimi kac saat surmeli?

Tehlike sinifina gore: az tehlikeli 8 saat, tehlikeli 12 saat, cok tehlikeli 16 saat minimum egitim gereklidir.

### ISG egitimi online verilebilir mi?

Evet, uzaktan egitim yonetmeligine uygun olarak online ISG egitimi verilebilir. Ancak uygulamali egitimler yuzyuze yapilmalidir.

### {{sehir}}'da ISG egitimi ucreti ne kadar?

Calisan sayisi, tehlike sinifi ve egitim formatina gore degisir. **Toplu egitim indirimi** icin bizi arayin.`,
		},
		{
			ID:    "iletisim_cta",
			Title: "CTA",
			Template: `## {{bolge}}'da ISG Egitimi Icin Hemen Arayin

{{firma}} olarak {{sehir}} ve cevresinde profesyonel ISG egitimi hizmeti sunuyoruz.

- Isyerinizde veya online egitim secenekleri
- Tehlike sinifina uygun egitim programlari
- ISG-KATIP kaydi ve sertifika
- Rekabetci fiyatlar ve toplu indirim

**{{telefon}}** | **{{email}}**`,
		},
	},
}
