package services

import (
	"context"
	"fmt"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"

	"github.com/xuri/excelize/v2"
)

// exportSheet is the sheet name used in exported workbooks.
const exportSheet = "Prospects"

// exportColumns fixes the human-labeled column order of exports. It is a
// superset of the import field set; the serialization is a plain 1:1
// field-to-column walk.
var exportColumns = []struct {
	label string
	value func(p *models.Prospect) string
}{
	{"Full Name", func(p *models.Prospect) string { return p.FullName }},
	{"Guardian Name", func(p *models.Prospect) string { return p.GuardianName }},
	{"Gender", func(p *models.Prospect) string { return p.Gender }},
	{"Date of Birth", func(p *models.Prospect) string { return p.DOB }},
	{"Age", func(p *models.Prospect) string { return p.Age }},
	{"Marital Status", func(p *models.Prospect) string { return p.MaritalStatus }},
	{"Mobile Number", func(p *models.Prospect) string { return p.Mobile }},
	{"Emergency Contact", func(p *models.Prospect) string { return p.EmergencyContact }},
	{"Address", func(p *models.Prospect) string { return p.Address }},
	{"Locality", func(p *models.Prospect) string { return p.Locality }},
	{"Blood Group", func(p *models.Prospect) string { return p.BloodGroup }},
	{"Aadhar Number", func(p *models.Prospect) string { return p.AadharNumber }},
	{"Badge Number", func(p *models.Prospect) string { return p.BadgeID }},
	{"Badge Status", func(p *models.Prospect) string { return p.BadgeStatus }},
	{"Department", func(p *models.Prospect) string { return p.Department }},
	{"Assigned To", func(p *models.Prospect) string {
		if p.AssignedTo != nil {
			return p.AssignedTo.Name
		}
		return ""
	}},
	{"Initiation Date", func(p *models.Prospect) string { return p.InitiationDate }},
	{"Initiated By", func(p *models.Prospect) string { return p.InitiatedBy }},
	{"Initiation Place", func(p *models.Prospect) string { return p.InitiationPlace }},
	{"Initiated", func(p *models.Prospect) string { return p.IsInitiated }},
	{"Added On", func(p *models.Prospect) string { return p.CreatedAt.Format("2006-01-02") }},
}

// exportService implements ExportService
type exportService struct {
	logger       *logger.Logger
	prospectRepo repositories.ProspectRepository
}

// NewExportService creates a new export service
func NewExportService(logger *logger.Logger, prospectRepo repositories.ProspectRepository) ExportService {
	return &exportService{logger: logger, prospectRepo: prospectRepo}
}

// BuildWorkbook serializes the full roster into an xlsx workbook
func (s *exportService) BuildWorkbook(ctx context.Context) (*excelize.File, error) {
	prospects, err := s.prospectRepo.GetAll(ctx, repositories.ProspectFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	for col, column := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, column.label); err != nil {
			return nil, err
		}
	}

	for row, prospect := range prospects {
		for col, column := range exportColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, column.value(prospect)); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	s.logger.WithField("rows", len(prospects)).Info("Export workbook built")
	return f, nil
}
