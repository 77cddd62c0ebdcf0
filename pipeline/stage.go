// Package pipeline drives a website generation project through a fixed
// sequence of production stages. Every stage produces a typed output that
// is structurally validated before the pipeline may advance, and each
// completed stage yields a deterministic forecast of what the next stage
// is expected to produce.
package pipeline

// Stage is one step of the eight-step generation pipeline.
type Stage string

const (
	StageInput    Stage = "input"
	StageResearch Stage = "research"
	StageDesign   Stage = "design"
	StageContent  Stage = "content"
	StageSEO      Stage = "seo"
	StageBuild    Stage = "build"
	StageReview   Stage = "review"
	StagePublish  Stage = "publish"
)

// stageOrder fixes the execution order. StagePublish is terminal.
var stageOrder = []Stage{
	StageInput,
	StageResearch,
	StageDesign,
	StageContent,
	StageSEO,
	StageBuild,
	StageReview,
	StagePublish,
}

// Stages returns the stages in execution order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// String returns the stage name.
func (s Stage) String() string { return string(s) }

// IsValid returns true if s is one of the known stages.
func (s Stage) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in the execution order, or -1 for an
// unknown stage.
func (s Stage) Index() int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage, or "" when s is terminal or unknown.
func (s Stage) Next() Stage {
	i := s.Index()
	if i < 0 || i == len(stageOrder)-1 {
		return ""
	}
	return stageOrder[i+1]
}

// Prev returns the preceding stage, or "" when s is first or unknown.
func (s Stage) Prev() Stage {
	i := s.Index()
	if i <= 0 {
		return ""
	}
	return stageOrder[i-1]
}

// Terminal returns true for the publish stage.
func (s Stage) Terminal() bool { return s == StagePublish }

// Status is the lifecycle state of a stage within one run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Metadata describes the operational properties of a stage.
type Metadata struct {
	Name              string
	Description       string
	EstimatedDuration string
	CanSkip           bool
	CanRetry          bool

	// Interactive stages wait for an operator decision before running
	// when the runner is in interactive mode.
	Interactive bool
}

var stageMetadata = map[Stage]Metadata{
	StageInput: {
		Name:              "Proje Girisi",
		Description:       "Temel proje bilgilerinin girilmesi",
		EstimatedDuration: "Manuel giris",
		CanRetry:          true,
		Interactive:       true,
	},
	StageResearch: {
		Name:              "Arastirma",
		Description:       "Sektor ve rakip analizi",
		EstimatedDuration: "2-3 dakika",
		CanSkip:           true,
		CanRetry:          true,
	},
	StageDesign: {
		Name:              "Tasarim",
		Description:       "Renk, font ve layout secimi",
		EstimatedDuration: "30-60 saniye",
		CanRetry:          true,
		Interactive:       true,
	},
	StageContent: {
		Name:              "Icerik",
		Description:       "Sayfa iceriklerinin uretimi",
		EstimatedDuration: "3-5 dakika",
		CanRetry:          true,
	},
	StageSEO: {
		Name:              "SEO",
		Description:       "Teknik SEO dosyalarinin ve sayfa planinin uretimi",
		EstimatedDuration: "10-20 saniye",
		CanRetry:          true,
	},
	StageBuild: {
		Name:              "Derleme",
		Description:       "Sitenin derlenmesi",
		EstimatedDuration: "2-4 dakika",
		CanRetry:          true,
		Interactive:       true,
	},
	StageReview: {
		Name:              "Inceleme",
		Description:       "Kalite kontrol ve onay",
		EstimatedDuration: "1-2 dakika",
		CanRetry:          true,
		Interactive:       true,
	},
	StagePublish: {
		Name:              "Yayinlama",
		Description:       "Sitenin deploy edilmesi",
		EstimatedDuration: "1-2 dakika",
		CanRetry:          true,
	},
}

// StageInfo returns the metadata for a stage. Unknown stages return the
// zero Metadata.
func StageInfo(s Stage) Metadata {
	return stageMetadata[s]
}
