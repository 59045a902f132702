package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/importer"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

var (
	// ErrDuplicateBatch is returned when the uploaded file matches a batch
	// already imported during this server session.
	ErrDuplicateBatch = errors.New("this file was already imported")
	// ErrNoDataRows is returned when the sheet parses but holds no data.
	ErrNoDataRows = errors.New("sheet contains no data rows")
)

// TooManyRowsError rejects oversized uploads before any insert.
type TooManyRowsError struct {
	Rows, Limit int
}

func (e *TooManyRowsError) Error() string {
	return fmt.Sprintf("sheet has %d rows, limit is %d", e.Rows, e.Limit)
}

// PartialInsertError reports a create failure partway through a batch.
// Earlier inserts stay committed; there is no rollback and no automatic
// retry.
type PartialInsertError struct {
	Inserted int
	Total    int
	Err      error
}

func (e *PartialInsertError) Error() string {
	return fmt.Sprintf("import failed after %d of %d records: %v", e.Inserted, e.Total, e.Err)
}

func (e *PartialInsertError) Unwrap() error { return e.Err }

// ImportResult summarizes an accepted import.
type ImportResult struct {
	FileName        string   `json:"file_name"`
	RowCount        int      `json:"row_count"`
	Inserted        int      `json:"inserted"`
	Fingerprint     string   `json:"fingerprint"`
	UnmappedHeaders []string `json:"unmapped_headers,omitempty"`
}

// importService implements ImportService. It owns the session-scoped
// fingerprint set, so duplicate detection is testable by construction.
type importService struct {
	logger       *logger.Logger
	config       *config.Config
	prospectRepo repositories.ProspectRepository
	batchRepo    repositories.ImportBatchRepository
	userRepo     repositories.UserRepository
	cache        *CacheService
	seen         *importer.FingerprintSet
}

// NewImportService creates a new import service
func NewImportService(
	logger *logger.Logger,
	config *config.Config,
	prospectRepo repositories.ProspectRepository,
	batchRepo repositories.ImportBatchRepository,
	userRepo repositories.UserRepository,
	cache *CacheService,
) ImportService {
	return &importService{
		logger:       logger,
		config:       config,
		prospectRepo: prospectRepo,
		batchRepo:    batchRepo,
		userRepo:     userRepo,
		cache:        cache,
		seen:         importer.NewFingerprintSet(),
	}
}

// ImportSpreadsheet runs the full pipeline: parse, map headers, validate
// required coverage, materialize rows, guard against duplicate batches, then
// insert records one at a time. Mapping and validation failures are
// fail-fast and reach no storage; an insert failure mid-batch leaves prior
// inserts committed.
func (s *importService) ImportSpreadsheet(ctx context.Context, file io.Reader, fileName string, importedBy *models.User) (*ImportResult, error) {
	sheet, err := importer.ParseSheet(file)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, ErrNoDataRows
	}
	if limit := s.config.Import.MaxRows; limit > 0 && len(sheet.Rows) > limit {
		return nil, &TooManyRowsError{Rows: len(sheet.Rows), Limit: limit}
	}

	mapping := importer.BuildColumnMapping(sheet.Headers)
	if err := importer.ValidateRequired(mapping); err != nil {
		return nil, err
	}

	records := importer.Materialize(sheet.Rows, mapping)

	fingerprint := importer.Fingerprint(records)
	if s.seen.Contains(fingerprint) {
		s.logger.WithImport(fingerprint).Warn("Duplicate import rejected")
		return nil, ErrDuplicateBatch
	}

	callersByName, err := s.callerIndex(ctx)
	if err != nil {
		return nil, err
	}

	inserted := 0
	for _, record := range records {
		prospect := prospectFromRecord(record, callersByName)
		if err := s.prospectRepo.Create(ctx, prospect); err != nil {
			s.logger.WithImport(fingerprint).WithError(err).
				WithField("inserted", inserted).Error("Import aborted mid-batch")
			return nil, &PartialInsertError{Inserted: inserted, Total: len(records), Err: err}
		}
		inserted++
	}

	s.seen.Add(fingerprint)

	batch := &models.ImportBatch{
		Fingerprint: fingerprint,
		FileName:    fileName,
		RowCount:    len(records),
		Inserted:    inserted,
		ImportedBy:  importedBy.ID,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		// The prospects are in; losing the audit row is not worth failing
		// the whole import over.
		s.logger.WithImport(fingerprint).WithError(err).Warn("Failed to record import batch")
	}

	if s.cache.Enabled() {
		if err := s.cache.Delete(ctx, KeyBadgeCounts); err != nil {
			s.logger.WithError(err).Warn("Failed to invalidate badge count cache")
		}
	}

	s.logger.WithImport(fingerprint).
		WithField("user_id", importedBy.ID).
		WithField("inserted", inserted).Info("Import completed")

	return &ImportResult{
		FileName:        fileName,
		RowCount:        len(records),
		Inserted:        inserted,
		Fingerprint:     fingerprint,
		UnmappedHeaders: unmappedHeaders(sheet.Headers, mapping),
	}, nil
}

// callerIndex maps lowercased caller names to user IDs so spreadsheet
// assignment columns can be resolved to real users. Unresolvable names
// leave the prospect unassigned.
func (s *importService) callerIndex(ctx context.Context) (map[string]string, error) {
	callers, err := s.userRepo.GetCallers(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(callers))
	for _, caller := range callers {
		index[strings.ToLower(strings.TrimSpace(caller.Name))] = caller.ID
	}
	return index, nil
}

// prospectFromRecord builds a prospect from one materialized record.
func prospectFromRecord(record importer.Record, callersByName map[string]string) *models.Prospect {
	prospect := &models.Prospect{
		FullName:         record[importer.FieldFullName],
		Address:          record[importer.FieldAddress],
		Mobile:           record[importer.FieldMobile],
		BloodGroup:       record[importer.FieldBloodGroup],
		AadharNumber:     record[importer.FieldAadharNumber],
		DOB:              record[importer.FieldDOB],
		Age:              record[importer.FieldAge],
		GuardianName:     record[importer.FieldGuardianName],
		BadgeID:          record[importer.FieldBadgeID],
		Gender:           record[importer.FieldGender],
		BadgeStatus:      record[importer.FieldBadgeStatus],
		EmergencyContact: record[importer.FieldEmergencyContact],
		Department:       record[importer.FieldDepartment],
		MaritalStatus:    record[importer.FieldMaritalStatus],
		Locality:         record[importer.FieldLocality],
		InitiationDate:   record[importer.FieldInitiationDate],
		InitiatedBy:      record[importer.FieldInitiatedBy],
		InitiationPlace:  record[importer.FieldInitiationPlace],
		IsInitiated:      record[importer.FieldIsInitiated],
	}

	if assignee := strings.ToLower(strings.TrimSpace(record[importer.FieldAssignedTo])); assignee != "" {
		if id, ok := callersByName[assignee]; ok {
			prospect.AssignedToID = &id
		}
	}

	return prospect
}

// unmappedHeaders lists the headers the matcher could not resolve, for
// surfacing back to the admin.
func unmappedHeaders(headers []string, mapping importer.ColumnMapping) []string {
	var unmapped []string
	for i, field := range mapping {
		if field == importer.Unmapped && strings.TrimSpace(headers[i]) != "" {
			unmapped = append(unmapped, headers[i])
		}
	}
	return unmapped
}
