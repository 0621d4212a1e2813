// Package csvexport renders verification attempts as CSV for staff review.
package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (14 columns).
var columns = []string{
	"Attempt ID",
	"Applicant ID",
	"File ID",
	"Declared ID Type",
	"Status",
	"Valid",
	"Detected Type",
	"First Name Match",
	"Last Name Match",
	"ID Number Match",
	"Birthdate Match",
	"Expired",
	"Failure Reasons",
	"Created At",
}

// Writer wraps csv.Writer for exporting attempts as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAttempts converts a batch of attempts to CSV rows and writes them.
func (w *Writer) WriteAttempts(attempts []domain.VerificationAttempt) error {
	for i := range attempts {
		row := attemptToRow(&attempts[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// attemptToRow converts a single attempt to a 14-element string slice.
// If the attempt has no report (recognition failed) or the report JSON is
// invalid, report columns are left empty.
func attemptToRow(attempt *domain.VerificationAttempt) []string {
	row := make([]string, len(columns))

	row[0] = attempt.ID.String()
	row[1] = attempt.ApplicantID.String()
	row[2] = attempt.FileID.String()
	row[3] = attempt.DeclaredIDType
	row[4] = string(attempt.Status)
	row[13] = attempt.CreatedAt.Format(time.RFC3339)

	if attempt.Status != domain.AttemptStatusCompleted || len(attempt.Report) == 0 {
		return row
	}

	var report verify.VerificationReport
	if err := json.Unmarshal(attempt.Report, &report); err != nil {
		return row
	}

	row[5] = strconv.FormatBool(report.Valid())
	row[6] = report.IDType.DetectedType
	row[7] = formatMatch(&report.FirstName)
	row[8] = formatMatch(&report.LastName)
	row[9] = formatMatch(&report.IDNumber)
	if report.Birthdate != nil {
		row[10] = strconv.FormatBool(report.Birthdate.Matched)
	}
	row[11] = strconv.FormatBool(report.Expiration.IsExpired)
	row[12] = joinReasons(report.Reasons())

	return row
}

func formatMatch(m *verify.FieldMatch) string {
	return fmt.Sprintf("%t (%.2f)", m.Matched, m.Confidence)
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += "; "
		}
		out += r
	}
	return out
}
