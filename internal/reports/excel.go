package reports

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

const (
	summarySheet    = "Summary"
	transcriptSheet = "Transcripts"
)

// BuildInterviewReport renders an interview's results workbook: a Summary
// sheet with one row per candidate and a Transcripts sheet with every
// recorded answer. transcripts is keyed by candidate id.
func BuildInterviewReport(iv *models.Interview, candidates []models.Candidate, transcripts map[string][]models.Transcript, counts map[string]int) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	rows := [][]any{
		{"Interview", iv.Title},
		{"Status", string(iv.Status)},
		{"Scheduled", iv.ScheduledStartTime.UTC().Format(time.RFC3339)},
		{"Questions", iv.NumQuestions},
		{},
		{"Candidate", "Email", "Status", "Progress", "Average score"},
	}
	for _, cand := range candidates {
		rows = append(rows, []any{
			cand.FullName,
			cand.Email,
			string(cand.Status),
			models.FormatProgress(counts[cand.ID], iv.NumQuestions),
			averageScore(transcripts[cand.ID]),
		})
	}
	if err := writeRows(f, summarySheet, rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(transcriptSheet); err != nil {
		return nil, fmt.Errorf("create transcript sheet: %w", err)
	}
	trows := [][]any{
		{"Candidate", "Question", "Answer", "Score", "Feedback", "Submitted"},
	}
	for _, cand := range candidates {
		for _, t := range transcripts[cand.ID] {
			var score any = ""
			if t.Score != nil {
				score = *t.Score
			}
			submitted := ""
			if t.SubmittedAt != nil {
				submitted = t.SubmittedAt.UTC().Format(time.RFC3339)
			}
			trows = append(trows, []any{
				cand.FullName, t.QuestionText, t.AnswerText, score, t.Feedback, submitted,
			})
		}
	}
	if err := writeRows(f, transcriptSheet, trows); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// averageScore is the mean over scored entries, rounded to one decimal;
// blank when nothing is scored yet.
func averageScore(entries []models.Transcript) any {
	var sum, n int
	for _, t := range entries {
		if t.Score != nil {
			sum += *t.Score
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
