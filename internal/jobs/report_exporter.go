package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/reports"
)

type InterviewLister interface {
	CompletedUnexported(ctx context.Context) ([]models.Interview, error)
	MarkReportExported(ctx context.Context, id string, ts time.Time) error
}

type CandidateLister interface {
	ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error)
}

type TranscriptLister interface {
	ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error)
	CountSubmitted(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error)
}

type ExporterConfig struct {
	Enabled   bool
	Schedule  string // cron expression
	OutputDir string
}

// ReportExporter periodically writes result workbooks for completed
// interviews that have not been exported yet.
type ReportExporter struct {
	interviews  InterviewLister
	candidates  CandidateLister
	transcripts TranscriptLister
	config      ExporterConfig
	logger      *zap.Logger
	cron        *cron.Cron
}

func NewReportExporter(interviews InterviewLister, candidates CandidateLister, transcripts TranscriptLister, cfg ExporterConfig, logger *zap.Logger) *ReportExporter {
	return &ReportExporter{
		interviews:  interviews,
		candidates:  candidates,
		transcripts: transcripts,
		config:      cfg,
		logger:      logger,
		cron:        cron.New(),
	}
}

func (e *ReportExporter) Start() error {
	if !e.config.Enabled {
		e.logger.Info("report exporter disabled")
		return nil
	}

	_, err := e.cron.AddFunc(e.config.Schedule, func() {
		if err := e.RunExport(context.Background()); err != nil {
			e.logger.Error("scheduled report export failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid export schedule %q: %w", e.config.Schedule, err)
	}

	e.cron.Start()
	e.logger.Info("report exporter started",
		zap.String("schedule", e.config.Schedule),
		zap.String("output_dir", e.config.OutputDir))
	return nil
}

// Stop halts the schedule and waits for a running export to finish.
func (e *ReportExporter) Stop() {
	ctx := e.cron.Stop()
	<-ctx.Done()
}

// RunExport writes one workbook per completed, unexported interview and
// marks each as exported. A failure on one interview does not stop the rest.
func (e *ReportExporter) RunExport(ctx context.Context) error {
	pending, err := e.interviews.CompletedUnexported(ctx)
	if err != nil {
		return fmt.Errorf("list pending interviews: %w", err)
	}
	if len(pending) == 0 {
		e.logger.Info("no interviews pending export")
		return nil
	}

	if err := os.MkdirAll(e.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	exported := 0
	for i := range pending {
		iv := &pending[i]
		if err := e.exportOne(ctx, iv); err != nil {
			e.logger.Error("export failed",
				zap.String("interview_id", iv.ID),
				zap.Error(err))
			continue
		}
		exported++
	}

	e.logger.Info("report export finished",
		zap.Int("exported", exported),
		zap.Int("pending", len(pending)))
	return nil
}

func (e *ReportExporter) exportOne(ctx context.Context, iv *models.Interview) error {
	candidates, err := e.candidates.ByInterview(ctx, iv.ID)
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}

	transcripts := make(map[string][]models.Transcript, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		ids = append(ids, cand.ID)
		entries, err := e.transcripts.ByCandidate(ctx, iv.ID, cand.ID)
		if err != nil {
			return fmt.Errorf("load transcripts for %s: %w", cand.ID, err)
		}
		transcripts[cand.ID] = entries
	}

	counts := map[string]int{}
	if len(ids) > 0 {
		counts, err = e.transcripts.CountSubmitted(ctx, iv.ID, ids)
		if err != nil {
			return fmt.Errorf("count submissions: %w", err)
		}
	}

	file, err := reports.BuildInterviewReport(iv, candidates, transcripts, counts)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	now := time.Now().UTC()
	filename := fmt.Sprintf("interview_report_%s_%s.xlsx", iv.ID, now.Format("20060102_150405"))
	path := filepath.Join(e.config.OutputDir, filename)
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	if err := e.interviews.MarkReportExported(ctx, iv.ID, now); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}

	e.logger.Info("exported interview report",
		zap.String("interview_id", iv.ID),
		zap.String("file", path))
	return nil
}
