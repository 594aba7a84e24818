// Package report orchestrates one render pass: load, normalize, filter, then
// per-question canonicalize, tabulate, order, and chart. Each pass reads an
// immutable dataset snapshot and produces fresh outputs; nothing is mutated
// in place, so CLI and server share the same builder.
package report

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/minedu-grd/encuesta-cli/internal/chart"
	"github.com/minedu-grd/encuesta-cli/internal/config"
	"github.com/minedu-grd/encuesta-cli/internal/dataset"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

// Builder computes report artifacts from the configured survey export.
type Builder struct {
	cfg   *config.Config
	cache *dataset.Cache
}

// NewBuilder creates a Builder with its own dataset cache.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg, cache: dataset.NewCache()}
}

// QuestionResult bundles the per-question outputs of a render pass.
type QuestionResult struct {
	Question string           `json:"question"`
	Table    survey.FreqTable `json:"table"`
	Chart    chart.Series     `json:"chart"`
}

// Report is the full output of one render pass.
type Report struct {
	RunID         string           `json:"run_id"`
	Filter        survey.Filter    `json:"filter"`
	KPI           survey.KPI       `json:"kpi"`
	RegionSummary survey.FreqTable `json:"region_summary"`
	RegionChart   chart.Series     `json:"region_chart"`
	Questions     []QuestionResult `json:"questions"`
}

// Dataset loads the configured source through the cache, verifies the
// required headers, and appends the normalized tier column. Header mismatch
// is reported here, before any further processing.
func (b *Builder) Dataset() (*dataset.Dataset, error) {
	ds, err := b.cache.Get(b.cfg.Source.Path, dataset.LoadOptions{
		SheetName: b.cfg.Source.Sheet,
		Delimiter: b.cfg.Source.DelimiterRune(),
	})
	if err != nil {
		return nil, err
	}

	cols := b.cfg.Columns
	if err := ds.RequireColumns(cols.Region, cols.Tier); err != nil {
		return nil, err
	}

	return survey.NormalizeTiers(ds, cols.Tier, cols.Normalized)
}

// Filtered returns the normalized dataset restricted by the filter.
func (b *Builder) Filtered(f survey.Filter) (*dataset.Dataset, error) {
	ds, err := b.Dataset()
	if err != nil {
		return nil, err
	}
	return f.Apply(ds, b.cfg.Columns.Region, b.cfg.Columns.Normalized)
}

// Questions returns the question columns of the loaded dataset.
func (b *Builder) Questions() ([]string, error) {
	ds, err := b.Dataset()
	if err != nil {
		return nil, err
	}
	return survey.Questions(ds, b.cfg.Columns.Exclude), nil
}

// QuestionTable computes the ordered frequency table for one question over
// an already-filtered dataset.
func (b *Builder) QuestionTable(ds *dataset.Dataset, question string) (survey.FreqTable, error) {
	values, err := ds.Column(question)
	if err != nil {
		return survey.FreqTable{}, eris.Wrapf(err, "report: question %q", question)
	}
	canonical := survey.Canonicalize(values, b.cfg.Canonical)
	return survey.Reorder(survey.Tabulate(canonical), b.cfg.Scales), nil
}

// Build runs one full render pass: KPIs, region summary, and every selected
// question's table and chart. An empty selection means all questions.
func (b *Builder) Build(f survey.Filter, selected []string) (*Report, error) {
	ds, err := b.Filtered(f)
	if err != nil {
		return nil, err
	}

	questions, err := survey.SelectQuestions(survey.Questions(ds, b.cfg.Columns.Exclude), selected)
	if err != nil {
		return nil, err
	}

	summary, err := survey.RegionSummary(ds, b.cfg.Columns.Region)
	if err != nil {
		return nil, err
	}

	opts := b.cfg.Chart.Options()
	rep := &Report{
		RunID:         uuid.NewString(),
		Filter:        f,
		KPI:           survey.Headline(ds, b.cfg.Columns.Region, b.cfg.Columns.Normalized),
		RegionSummary: summary,
		RegionChart:   chart.Render(summary, "Respuestas por región", opts),
	}

	for _, q := range questions {
		table, err := b.QuestionTable(ds, q)
		if err != nil {
			return nil, err
		}
		rep.Questions = append(rep.Questions, QuestionResult{
			Question: q,
			Table:    table,
			Chart:    chart.Render(table, "Distribución de respuestas — "+q, opts),
		})
	}

	zap.L().Info("report built",
		zap.String("run_id", rep.RunID),
		zap.Int("responses", rep.KPI.Responses),
		zap.Int("questions", len(rep.Questions)),
		zap.String("region", f.Region),
		zap.String("tier", f.Tier),
	)
	return rep, nil
}
