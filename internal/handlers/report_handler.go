package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/reports"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

// ReportHandler serves interview result workbooks for download.
type ReportHandler struct {
	interviews  InterviewStore
	candidates  CandidateStore
	transcripts TranscriptStore
	logger      *zap.Logger
}

func NewReportHandler(interviews InterviewStore, candidates CandidateStore, transcripts TranscriptStore, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{interviews: interviews, candidates: candidates, transcripts: transcripts, logger: logger}
}

// DownloadHandler handles GET /interviews/{id}/report.
func (h *ReportHandler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")

	iv, ok := loadOwned(w, r, h.interviews, interviewID)
	if !ok {
		return
	}

	candidates, err := h.candidates.ByInterview(r.Context(), iv.ID)
	if err != nil {
		h.logger.Error("report: list candidates failed", zap.String("interview_id", iv.ID), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "report_error", "Failed to build report")
		return
	}

	transcripts := make(map[string][]models.Transcript, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		ids = append(ids, cand.ID)
		entries, err := h.transcripts.ByCandidate(r.Context(), iv.ID, cand.ID)
		if err != nil {
			h.logger.Error("report: load transcripts failed", zap.String("candidate_id", cand.ID), zap.Error(err))
			utils.JSONError(w, http.StatusInternalServerError, "report_error", "Failed to build report")
			return
		}
		transcripts[cand.ID] = entries
	}

	counts := map[string]int{}
	if len(ids) > 0 {
		counts, err = h.transcripts.CountSubmitted(r.Context(), iv.ID, ids)
		if err != nil {
			h.logger.Error("report: count submissions failed", zap.String("interview_id", iv.ID), zap.Error(err))
			utils.JSONError(w, http.StatusInternalServerError, "report_error", "Failed to build report")
			return
		}
	}

	file, err := reports.BuildInterviewReport(iv, candidates, transcripts, counts)
	if err != nil {
		h.logger.Error("report: build workbook failed", zap.String("interview_id", iv.ID), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "report_error", "Failed to build report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "interview_report_"+iv.ID+".xlsx"))
	if _, err := file.WriteTo(w); err != nil {
		h.logger.Error("report: write response failed", zap.String("interview_id", iv.ID), zap.Error(err))
	}
}
