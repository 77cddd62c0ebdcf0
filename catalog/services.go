package catalog

// builtinServices returns the full service catalog. Data is ASCII-folded on
// purpose so slugs, keywords and URLs never need transliteration downstream.
func builtinServices() []Service {
	return []Service{
		{
			ID:               "isyeri-hekimi",
			Name:             "Isyeri Hekimligi",
			Slug:             "isyeri-hekimi",
			ShortDescription: "6331 sayili kanun kapsaminda isyeri hekimligi hizmeti",
			Category:         CategoryMandatory,
			Mandatory:        true,
			Keywords: KeywordSet{
				Primary:   []string{"isyeri hekimi", "isyeri hekimligi", "osgb hekim"},
				Secondary: []string{"is sagligi hekimi", "isci sagligi", "saglik gozetimi"},
				LongTail: []string{
					"isyeri hekimi fiyatlari",
					"isyeri hekimi ne is yapar",
					"isyeri hekimi zorunlu mu",
					"kac calisana isyeri hekimi gerekir",
				},
			},
			LocationPatterns: []string{
				"{sehir} isyeri hekimi",
				"{sehir} isyeri hekimligi",
				"{ilce} isyeri hekimi",
				"{sehir} osgb isyeri hekimi",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "yasal_zorunluluk", "hizmet_kapsami",
				"kimler_icin", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
				"Isyeri Hekimi ve Diger Saglik Personelinin Gorev, Yetki, Sorumluluk ve Egitimlerine Dair Yonetmelik",
			},
		},
		{
			ID:               "is-guvenligi-uzmani",
			Name:             "Is Guvenligi Uzmanligi",
			Slug:             "is-guvenligi-uzmani",
			ShortDescription: "A, B, C sinifi is guvenligi uzmanligi hizmeti",
			Category:         CategoryMandatory,
			Mandatory:        true,
			Keywords: KeywordSet{
				Primary:   []string{"is guvenligi uzmani", "isg uzmani", "osgb uzman"},
				Secondary: []string{"a sinifi uzman", "b sinifi uzman", "c sinifi uzman"},
				LongTail: []string{
					"is guvenligi uzmani fiyatlari",
					"is guvenligi uzmani ne yapar",
					"hangi sinif uzman gerekir",
					"tehlike sinifina gore uzman",
				},
			},
			LocationPatterns: []string{
				"{sehir} is guvenligi uzmani",
				"{ilce} isg uzmani",
				"{sehir} osgb uzman",
				"{sehir} a sinifi uzman",
				"{sehir} b sinifi uzman",
				"{sehir} c sinifi uzman",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "uzman_siniflari", "tehlike_siniflari",
				"gorev_ve_yetkiler", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
				"Is Guvenligi Uzmanlarinin Gorev, Yetki, Sorumluluk ve Egitimlerine Iliskin Yonetmelik",
			},
		},
		{
			ID:               "risk-analizi",
			Name:             "Risk Degerlendirmesi",
			Slug:             "risk-analizi",
			ShortDescription: "Isyeri risk analizi ve degerlendirme hizmeti",
			Category:         CategoryMandatory,
			Mandatory:        true,
			Keywords: KeywordSet{
				Primary:   []string{"risk analizi", "risk degerlendirmesi", "is guvenligi risk"},
				Secondary: []string{"tehlike tespiti", "risk puanlama", "risk haritasi"},
				LongTail: []string{
					"risk analizi nasil yapilir",
					"risk analizi zorunlu mu",
					"risk analizi fiyati",
					"kac yilda bir risk analizi",
				},
			},
			LocationPatterns: []string{
				"{sehir} risk analizi",
				"{sehir} risk degerlendirmesi",
				"{ilce} isyeri risk analizi",
				"{sektor} risk analizi {sehir}",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "yasal_zorunluluk", "risk_metodolojisi",
				"surec_adimlari", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			TargetSectors: []string{
				"insaat", "uretim", "kimya", "tekstil", "gida", "metal", "otomotiv",
			},
			LegalReferences: []string{
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
				"Is Sagligi ve Guvenligi Risk Degerlendirmesi Yonetmeligi",
			},
		},
		{
			ID:               "isg-egitimi",
			Name:             "Is Sagligi ve Guvenligi Egitimi",
			Slug:             "is-guvenligi-egitimi",
			ShortDescription: "Temel ISG, tehlike sinifi ve isbasi egitimleri",
			Category:         CategoryTraining,
			Mandatory:        true,
			Keywords: KeywordSet{
				Primary:   []string{"is guvenligi egitimi", "isg egitimi", "calisan egitimi"},
				Secondary: []string{"tehlike sinifi egitimi", "isbasi egitimi", "periyodik egitim"},
				LongTail: []string{
					"is guvenligi egitimi zorunlu mu",
					"kac saatlik egitim gerekir",
					"is guvenligi egitimi fiyati",
					"online is guvenligi egitimi",
				},
			},
			LocationPatterns: []string{
				"{sehir} is guvenligi egitimi",
				"{sehir} isg egitimi",
				"{ilce} calisan egitimi",
				"{sehir} isyerinde egitim",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "egitim_turleri", "egitim_sureleri",
				"egitim_metodolojisi", "sertifika_bilgi", "fiyatlandirma_bilgi",
				"sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
				"Calisanlarin Is Sagligi ve Guvenligi Egitimlerinin Usul ve Esaslari Hakkinda Yonetmelik",
			},
		},
		{
			ID:               "ilkyardim-egitimi",
			Name:             "Ilkyardim Egitimi",
			Slug:             "ilkyardim-egitimi",
			ShortDescription: "Sertifikali ilkyardim ve temel yasam destegi egitimi",
			Category:         CategoryTraining,
			Keywords: KeywordSet{
				Primary:   []string{"ilkyardim egitimi", "ilk yardim kursu", "ilkyardimci egitimi"},
				Secondary: []string{"tyd egitimi", "cpr egitimi", "acil mudahale"},
				LongTail: []string{
					"ilkyardim sertifikasi nasil alinir",
					"ilkyardim egitimi fiyati",
					"kac calisana ilkyardimci",
					"ilkyardim egitimi ne kadar surer",
				},
			},
			LocationPatterns: []string{
				"{sehir} ilkyardim egitimi",
				"{sehir} ilkyardim kursu",
				"{ilce} ilkyardimci egitimi",
				"{sehir} sertifikali ilkyardim",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "egitim_icerigi", "sertifika_bilgi",
				"kimler_olmali", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Ilkyardim Yonetmeligi",
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
			},
		},
		{
			ID:               "yangin-egitimi",
			Name:             "Yangin Egitimi",
			Slug:             "yangin-egitimi",
			ShortDescription: "Yangin tatbikati ve yanginla mucadele egitimi",
			Category:         CategoryTraining,
			Keywords: KeywordSet{
				Primary:   []string{"yangin egitimi", "yangin tatbikati", "yangin sondurme"},
				Secondary: []string{"yangin tupu kullanimi", "tahliye egitimi", "yangin guvenligi"},
				LongTail: []string{
					"yangin egitimi zorunlu mu",
					"yangin tatbikati nasil yapilir",
					"kac ayda bir yangin tatbikati",
					"yangin egitimi fiyati",
				},
			},
			LocationPatterns: []string{
				"{sehir} yangin egitimi",
				"{sehir} yangin tatbikati",
				"{ilce} yangin sondurme egitimi",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "egitim_icerigi", "tatbikat_bilgi",
				"ekipman_tanitimi", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Binalarin Yangindan Korunmasi Hakkinda Yonetmelik",
				"Is Sagligi ve Guvenligi Kanunu",
			},
		},
		{
			ID:               "saglik-taramasi",
			Name:             "Ise Giris ve Periyodik Muayene",
			Slug:             "saglik-taramasi",
			ShortDescription: "Ise giris, periyodik ve isyeri ortam saglik taramalari",
			Category:         CategoryHealth,
			Keywords: KeywordSet{
				Primary:   []string{"ise giris muayenesi", "periyodik muayene", "saglik taramasi"},
				Secondary: []string{"isitme testi", "gorme testi", "akciger filmi", "saglik raporu"},
				LongTail: []string{
					"ise giris muayenesi ne kadar",
					"periyodik muayene kac yilda bir",
					"isci saglik raporu nereden alinir",
					"saglik taramasi fiyati",
				},
			},
			LocationPatterns: []string{
				"{sehir} ise giris muayenesi",
				"{sehir} periyodik muayene",
				"{ilce} saglik taramasi",
				"{sehir} isci saglik raporu",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "muayene_turleri", "testler_listesi",
				"gecerlilik_sureleri", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
				"Is Sagligi ve Guvenligi Hizmetleri Yonetmeligi",
			},
		},
		{
			ID:               "acil-durum-plani",
			Name:             "Acil Durum Plani",
			Slug:             "acil-durum-plani",
			ShortDescription: "Isyeri acil durum eylem plani hazirlama",
			Category:         CategoryCompliance,
			Keywords: KeywordSet{
				Primary:   []string{"acil durum plani", "acil eylem plani", "tahliye plani"},
				Secondary: []string{"kriz yonetimi", "acil durum ekibi", "toplanma noktasi"},
				LongTail: []string{
					"acil durum plani ornegi",
					"acil durum plani nasil hazirlanir",
					"acil durum plani zorunlu mu",
					"acil durum plani fiyati",
				},
			},
			LocationPatterns: []string{
				"{sehir} acil durum plani",
				"{ilce} isyeri acil durum",
				"{sehir} tahliye plani",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "plan_icerigi", "ekip_olusturma",
				"tatbikat_bilgi", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Isyerlerinde Acil Durumlar Hakkinda Yonetmelik",
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
			},
		},
		{
			ID:               "isg-kurulu",
			Name:             "ISG Kurul Toplantilari",
			Slug:             "is-guvenligi-kurulu",
			ShortDescription: "Is sagligi ve guvenligi kurul toplanti organizasyonu",
			Category:         CategoryCompliance,
			Keywords: KeywordSet{
				Primary:   []string{"isg kurulu", "is guvenligi kurulu", "kurul toplantisi"},
				Secondary: []string{"kurul kararlari", "isci temsilcisi", "isveren temsilcisi"},
				LongTail: []string{
					"isg kurulu kimlerden olusur",
					"isg kurulu zorunlu mu",
					"kac calisana kurul gerekir",
					"kurul toplanti tutanagi",
				},
			},
			LocationPatterns: []string{
				"{sehir} isg kurulu",
				"{sehir} is guvenligi kurulu",
				"{ilce} kurul toplantisi",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "kurul_uyeleri", "toplanti_esaslari",
				"gorev_dagilimlari", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Is Sagligi ve Guvenligi Kurullari Hakkinda Yonetmelik",
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
			},
		},
		{
			ID:               "onayli-defter",
			Name:             "Onayli Defter Islemleri",
			Slug:             "onayli-defter",
			ShortDescription: "Isyeri saglik ve guvenlik birimi defteri tutma",
			Category:         CategoryCompliance,
			Keywords: KeywordSet{
				Primary:   []string{"onayli defter", "isg defteri", "isyeri defteri"},
				Secondary: []string{"defter onaylama", "defter tutma", "kayit defteri"},
				LongTail: []string{
					"onayli defter nasil alinir",
					"onayli defter nereye onaylatilir",
					"onayli defter zorunlu mu",
					"onayli defter fiyati",
				},
			},
			LocationPatterns: []string{
				"{sehir} onayli defter",
				"{sehir} isg defteri",
				"{ilce} isyeri defteri",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "defter_turleri", "kayit_gereksinimleri",
				"onaylama_sureci", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Is Sagligi ve Guvenligi Hizmetleri Yonetmeligi",
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
			},
		},
		{
			ID:               "isg-katip",
			Name:             "ISG-KATIP Islemleri",
			Slug:             "isg-katip",
			ShortDescription: "ISG-KATIP sistemi uzerinden bildirim ve takip",
			Category:         CategoryIntegration,
			Keywords: KeywordSet{
				Primary:   []string{"isg katip", "isgkatip", "katip sistemi"},
				Secondary: []string{"katip bildirimi", "osgb katip", "bakanlik bildirimi"},
				LongTail: []string{
					"isg katip nasil kullanilir",
					"isg katip sifresi nasil alinir",
					"katip bildirimi nasil yapilir",
					"katip sistemi giris",
				},
			},
			LocationPatterns: []string{
				"{sehir} isg katip",
				"{sehir} katip bildirimi",
				"{ilce} osgb katip",
			},
			RequiredSections: []string{
				"hero", "hizmet_tanimi", "sistem_tanitimi", "bildirim_turleri",
				"surec_adimlari", "fiyatlandirma_bilgi", "sss", "iletisim_cta",
			},
			LegalReferences: []string{
				"Is Sagligi ve Guvenligi Hizmetleri Yonetmeligi",
				"6331 sayili Is Sagligi ve Guvenligi Kanunu",
			},
		},
	}
}
