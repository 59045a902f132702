package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// buildWorkbook builds an in-memory xlsx upload, headers first.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

type importFixture struct {
	svc          ImportService
	prospectRepo *MockProspectRepository
	batchRepo    *MockImportBatchRepository
	userRepo     *MockUserRepository
}

func newImportFixture(cfg *config.Config) *importFixture {
	prospectRepo := &MockProspectRepository{}
	batchRepo := &MockImportBatchRepository{}
	userRepo := &MockUserRepository{}
	cache := NewCacheService(nil, cfg)

	return &importFixture{
		svc:          NewImportService(createTestLogger(), cfg, prospectRepo, batchRepo, userRepo, cache),
		prospectRepo: prospectRepo,
		batchRepo:    batchRepo,
		userRepo:     userRepo,
	}
}

func adminUser() *models.User {
	return &models.User{ID: "admin-1", Name: "Admin", Role: models.RoleAdmin, IsActive: true}
}

func TestImportSpreadsheet_EndToEnd(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone", "Blood Grou", "Favorite Color", "Batch Num"},
		{"Ravi Kumar", "9876543210", "B+", "blue", "G-112"},
	})

	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{}, nil)
	fx.prospectRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Prospect) bool {
		return p.FullName == "Ravi Kumar" &&
			p.Mobile == "9876543210" &&
			p.BloodGroup == "B+" &&
			p.BadgeID == "G-112" &&
			p.AssignedToID == nil
	})).Return(nil)
	fx.batchRepo.On("Create", ctx, mock.AnythingOfType("*models.ImportBatch")).Return(nil)

	result, err := fx.svc.ImportSpreadsheet(ctx, buf, "sangat.xlsx", adminUser())
	require.NoError(t, err)

	assert.Equal(t, "sangat.xlsx", result.FileName)
	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t, 1, result.Inserted)
	assert.Len(t, result.Fingerprint, 64)
	assert.Equal(t, []string{"Favorite Color"}, result.UnmappedHeaders)

	fx.prospectRepo.AssertExpectations(t)
	fx.batchRepo.AssertExpectations(t)
}

func TestImportSpreadsheet_MissingRequiredColumns(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	// No header maps to mobile, so the whole file is rejected up front.
	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Favorite Color"},
		{"Ravi Kumar", "blue"},
	})

	_, err := fx.svc.ImportSpreadsheet(ctx, buf, "sangat.xlsx", adminUser())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile")
	fx.prospectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportSpreadsheet_NoDataRows(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
	})

	_, err := fx.svc.ImportSpreadsheet(ctx, buf, "empty.xlsx", adminUser())

	assert.ErrorIs(t, err, ErrNoDataRows)
	fx.prospectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportSpreadsheet_TooManyRows(t *testing.T) {
	cfg := createTestConfig()
	cfg.Import.MaxRows = 1
	fx := newImportFixture(cfg)
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
		{"Ravi", "111"},
		{"Meera", "222"},
	})

	_, err := fx.svc.ImportSpreadsheet(ctx, buf, "big.xlsx", adminUser())

	var tooMany *TooManyRowsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 2, tooMany.Rows)
	assert.Equal(t, 1, tooMany.Limit)
	fx.prospectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportSpreadsheet_DuplicateBatchRejected(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	rows := [][]interface{}{
		{"Name", "Phone"},
		{"Ravi Kumar", "9876543210"},
	}

	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{}, nil)
	fx.prospectRepo.On("Create", ctx, mock.AnythingOfType("*models.Prospect")).Return(nil)
	fx.batchRepo.On("Create", ctx, mock.AnythingOfType("*models.ImportBatch")).Return(nil)

	_, err := fx.svc.ImportSpreadsheet(ctx, buildWorkbook(t, rows), "first.xlsx", adminUser())
	require.NoError(t, err)

	// Same logical data again, even under a different file name.
	_, err = fx.svc.ImportSpreadsheet(ctx, buildWorkbook(t, rows), "second.xlsx", adminUser())
	assert.ErrorIs(t, err, ErrDuplicateBatch)

	fx.prospectRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestImportSpreadsheet_ReorderedRowsAreStillDuplicates(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{}, nil)
	fx.prospectRepo.On("Create", ctx, mock.AnythingOfType("*models.Prospect")).Return(nil)
	fx.batchRepo.On("Create", ctx, mock.AnythingOfType("*models.ImportBatch")).Return(nil)

	_, err := fx.svc.ImportSpreadsheet(ctx, buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
		{"Ravi", "111"},
		{"Meera", "222"},
	}), "a.xlsx", adminUser())
	require.NoError(t, err)

	_, err = fx.svc.ImportSpreadsheet(ctx, buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
		{"Meera", "222"},
		{"Ravi", "111"},
	}), "b.xlsx", adminUser())
	assert.ErrorIs(t, err, ErrDuplicateBatch)
}

func TestImportSpreadsheet_PartialInsertFailure(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
		{"Ravi", "111"},
		{"Meera", "222"},
	})

	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{}, nil)
	fx.prospectRepo.On("Create", ctx, mock.AnythingOfType("*models.Prospect")).Return(nil).Once()
	fx.prospectRepo.On("Create", ctx, mock.AnythingOfType("*models.Prospect")).Return(errors.New("connection reset")).Once()

	_, err := fx.svc.ImportSpreadsheet(ctx, buf, "sangat.xlsx", adminUser())

	var partial *PartialInsertError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Inserted)
	assert.Equal(t, 2, partial.Total)

	// A failed batch is not fingerprinted, so a corrected retry is accepted.
	fx.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportSpreadsheet_ResolvesAssignedCaller(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone", "Assigned To"},
		{"Ravi", "111", "Asha"},
		{"Meera", "222", "Nobody Known"},
	})

	asha := &models.User{ID: "caller-1", Name: "Asha", Role: models.RoleUser, IsActive: true}
	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{asha}, nil)
	fx.prospectRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Prospect) bool {
		return p.FullName == "Ravi" && p.AssignedToID != nil && *p.AssignedToID == "caller-1"
	})).Return(nil).Once()
	fx.prospectRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Prospect) bool {
		return p.FullName == "Meera" && p.AssignedToID == nil
	})).Return(nil).Once()
	fx.batchRepo.On("Create", ctx, mock.AnythingOfType("*models.ImportBatch")).Return(nil)

	_, err := fx.svc.ImportSpreadsheet(ctx, buf, "sangat.xlsx", adminUser())
	require.NoError(t, err)

	fx.prospectRepo.AssertExpectations(t)
}

func TestImportSpreadsheet_AuditFailureDoesNotFailImport(t *testing.T) {
	fx := newImportFixture(createTestConfig())
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Phone"},
		{"Ravi", "111"},
	})

	fx.userRepo.On("GetCallers", ctx).Return([]*models.User{}, nil)
	fx.prospectRepo.On("Create", ctx, mock.AnythingOfType("*models.Prospect")).Return(nil)
	fx.batchRepo.On("Create", ctx, mock.AnythingOfType("*models.ImportBatch")).Return(errors.New("audit table locked"))

	result, err := fx.svc.ImportSpreadsheet(ctx, buf, "sangat.xlsx", adminUser())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}
