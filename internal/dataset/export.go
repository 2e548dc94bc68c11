package dataset

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"intake-insights-go/internal/types"
)

const callLogSheet = "Call Logs"

var callLogHeader = []any{
	"id", "call_id", "bot_id", "caller_number", "duration_sec",
	"call_type", "urgency_level", "sentiment", "completion_status",
	"patient_identified", "information_collected", "next_steps", "created_at",
}

// ExportCallLogs writes one spreadsheet row per processed call.
func ExportCallLogs(w io.Writer, logs []types.CallLog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", callLogSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(callLogSheet, "A1", &callLogHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		a := l.Analysis
		row := []any{
			l.ID, l.CallID, l.BotID, l.CallerNumber, l.Duration,
			a.CallType, a.UrgencyLevel, a.Sentiment, a.CompletionStatus,
			a.PatientIdentified, strings.Join(a.InformationCollected, ", "),
			strings.Join(l.NextSteps, "; "), l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(callLogSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
