package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"

	"github.com/jung-kurt/gofpdf"
)

// reportService implements ReportService
type reportService struct {
	logger      *logger.Logger
	callLogRepo repositories.CallLogRepository
}

// NewReportService creates a new report service
func NewReportService(logger *logger.Logger, callLogRepo repositories.CallLogRepository) ReportService {
	return &reportService{logger: logger, callLogRepo: callLogRepo}
}

// CallLogReport renders a multi-section PDF for one call log: prospect
// details, the recorded outcome, and caller notes. The layout is
// best-effort; it is meant for printing and filing, not pixel fidelity.
func (s *reportService) CallLogReport(ctx context.Context, callLogID string) ([]byte, error) {
	log, err := s.callLogRepo.GetByID(ctx, callLogID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Call Outcome Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Call Outcome Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("02 Jan 2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	s.section(pdf, "Prospect Details")
	if p := log.Prospect; p != nil {
		s.row(pdf, "Full Name", p.FullName)
		s.row(pdf, "Mobile", p.Mobile)
		s.row(pdf, "Address", p.Address)
		s.row(pdf, "Locality", p.Locality)
		s.row(pdf, "Badge Number", p.BadgeID)
		s.row(pdf, "Badge Status", p.BadgeStatus)
	}
	pdf.Ln(4)

	s.section(pdf, "Call Outcome")
	s.row(pdf, "Outcome", log.Outcome)
	s.row(pdf, "Called At", log.CalledAt.Format("02 Jan 2006 15:04"))
	if log.Caller != nil {
		s.row(pdf, "Caller", log.Caller.Name)
	}
	s.row(pdf, "Response", log.Response)
	s.row(pdf, "Will Attend", yesNo(log.WillAttend))
	if log.FollowUpDate != nil {
		s.row(pdf, "Follow-up Date", log.FollowUpDate.Format("02 Jan 2006"))
	}
	pdf.Ln(4)

	s.section(pdf, "Notes")
	pdf.SetFont("Helvetica", "", 10)
	notes := log.Notes
	if notes == "" {
		notes = "-"
	}
	pdf.MultiCell(0, 6, notes, "", "L", false)
	pdf.Ln(2)

	if log.VisitRequested {
		s.section(pdf, "Visit")
		s.row(pdf, "Visit Requested", yesNo(log.VisitRequested))
		pdf.SetFont("Helvetica", "", 10)
		if log.VisitNotes != "" {
			pdf.MultiCell(0, 6, log.VisitNotes, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.WithCallLog(callLogID).WithError(err).Error("Failed to render PDF report")
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	s.logger.WithCallLog(callLogID).Info("Call log report generated")
	return buf.Bytes(), nil
}

// section draws a section heading with a rule under it
func (s *reportService) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// row draws one label/value line
func (s *reportService) row(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
