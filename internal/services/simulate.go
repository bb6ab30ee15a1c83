package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
)

// Relative weights of the simulated operations, expressed as multiples of the
// base latency. Mutations are a touch slower than reads; generation jobs are
// an order of magnitude slower.
const (
	delayFetch   = 1.0
	delayCreate  = 1.33
	delayUpdate  = 1.17
	delayDelete  = 1.0
	delayExport  = 5.0
	delayAIIdeas = 6.67
	delayScrape  = 6.0
	delayReport  = 6.67
)

// Simulator stands in for the scan-processing and generation backends. It
// sleeps a configurable latency (base plus uniform jitter) before answering;
// with base and jitter both zero it answers immediately, which is what tests
// use.
type Simulator struct {
	base   time.Duration
	jitter time.Duration

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewSimulator(base, jitter time.Duration) *Simulator {
	return &Simulator{
		base:   base,
		jitter: jitter,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

func (s *Simulator) delay(scale float64) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := time.Duration(float64(s.base) * scale)
	if s.jitter > 0 {
		d += time.Duration(s.rng.Int63n(int64(s.jitter)))
	}
	return d
}

func (s *Simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// wait blocks for d or until ctx is done, whichever comes first.
func (s *Simulator) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Echo returns v after the simulated latency for the given operation scale.
// Callers pass the value a real backend would have produced.
func Echo[T any](ctx context.Context, s *Simulator, scale float64, v T) (T, error) {
	if err := s.wait(ctx, s.delay(scale)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func EchoFetch[T any](ctx context.Context, s *Simulator, v T) (T, error) {
	return Echo(ctx, s, delayFetch, v)
}

func EchoCreate[T any](ctx context.Context, s *Simulator, v T) (T, error) {
	return Echo(ctx, s, delayCreate, v)
}

func EchoUpdate[T any](ctx context.Context, s *Simulator, v T) (T, error) {
	return Echo(ctx, s, delayUpdate, v)
}

func EchoDelete[T any](ctx context.Context, s *Simulator, v T) (T, error) {
	return Echo(ctx, s, delayDelete, v)
}

// GenerateExport renders an export artifact for a project version.
func (s *Simulator) GenerateExport(ctx context.Context, project models.Project, version models.Version, format, generatedBy string) (models.ExportFile, error) {
	if err := s.wait(ctx, s.delay(delayExport)); err != nil {
		return models.ExportFile{}, err
	}
	return models.ExportFile{
		ID:          "export-" + uuid.New().String(),
		ProjectID:   project.ID,
		VersionID:   version.ID,
		Type:        format,
		Filename:    fmt.Sprintf("%s_v%d.%s", strings.ReplaceAll(project.Name, " ", "_"), version.VersionNumber, format),
		FileSize:    int64(s.intn(50000) + 500),
		GeneratedBy: generatedBy,
		CreatedAt:   s.now().UTC(),
		URL:         "#",
	}, nil
}

var aiConcepts = []string{
	"concept-clean-lines.jpg",
	"concept-warm-texture.jpg",
	"concept-bold-accent.jpg",
	"concept-soft-neutral.jpg",
}

// GenerateAIIdeas produces a four-concept idea set for the prompt.
func (s *Simulator) GenerateAIIdeas(ctx context.Context, prompt, roomType, style string) (models.AIIdeaSet, error) {
	if err := s.wait(ctx, s.delay(delayAIIdeas)); err != nil {
		return models.AIIdeaSet{}, err
	}
	images := make([]string, len(aiConcepts))
	copy(images, aiConcepts)
	return models.AIIdeaSet{
		ID:         "ai-" + uuid.New().String(),
		Prompt:     prompt,
		RoomType:   roomType,
		Style:      style,
		Images:     images,
		CreatedAt:  s.now().UTC(),
		SavedItems: []string{},
	}, nil
}

var scrapedProducts = []models.ProductItem{
	{Name: "Sculpted Oak Armchair", Brand: "Form & Refine", SKU: "FR-SOA-101", Price: 1240, Category: "Furniture", Supplier: "Form & Refine", LeadTime: "4-6 weeks", Dimensions: "72 x 70 x 78 cm"},
	{Name: "Matte Black Floor Lamp", Brand: "Gubi", SKU: "GB-MFL-102", Price: 680, Category: "Lighting", Supplier: "Gubi", LeadTime: "2-3 weeks", Dimensions: "30 x 30 x 150 cm"},
	{Name: "Travertine Coffee Table", Brand: "Menu", SKU: "MN-TCT-103", Price: 1890, Category: "Furniture", Supplier: "Menu", LeadTime: "5-7 weeks", Dimensions: "110 x 60 x 38 cm"},
	{Name: "Wool Bouclé Ottoman", Brand: "Ferm Living", SKU: "FL-WBO-104", Price: 520, Category: "Furniture", Supplier: "Ferm Living", LeadTime: "2-4 weeks", Dimensions: "60 x 60 x 42 cm"},
}

// ScrapeProductURL pretends to scrape a retailer page and returns one of a
// small set of canned products tagged with the source URL.
func (s *Simulator) ScrapeProductURL(ctx context.Context, url string) (models.ProductItem, error) {
	if err := s.wait(ctx, s.delay(delayScrape)); err != nil {
		return models.ProductItem{}, err
	}
	p := scrapedProducts[s.intn(len(scrapedProducts))]
	p.ID = "prod-" + uuid.New().String()
	p.SourceURL = url
	return p, nil
}

type Report struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
	URL         string    `json:"url"`
}

// GenerateReport renders a dated PDF report of the requested type.
func (s *Simulator) GenerateReport(ctx context.Context, reportType string) (Report, error) {
	if err := s.wait(ctx, s.delay(delayReport)); err != nil {
		return Report{}, err
	}
	now := s.now().UTC()
	return Report{
		ID:          "report-" + uuid.New().String(),
		Type:        reportType,
		Filename:    fmt.Sprintf("%s_report_%s.pdf", reportType, now.Format("2006-01-02")),
		GeneratedAt: now,
		URL:         "#",
	}, nil
}
