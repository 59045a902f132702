package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/importer"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// createTestLogger creates a logger for testing
func createTestLogger() *logger.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &logger.Logger{Logger: log}
}

// MockImportService is a mock implementation of ImportService for testing
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportSpreadsheet(ctx context.Context, file io.Reader, fileName string, importedBy *models.User) (*services.ImportResult, error) {
	args := m.Called(ctx, file, fileName, importedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ImportResult), args.Error(1)
}

// MockAuthorizationService is a mock implementation of AuthorizationService for testing
type MockAuthorizationService struct {
	mock.Mock
}

func (m *MockAuthorizationService) CanManageRoster(user *models.User) bool {
	args := m.Called(user)
	return args.Bool(0)
}

func (m *MockAuthorizationService) CanViewProspect(user *models.User, prospect *models.Prospect) bool {
	args := m.Called(user, prospect)
	return args.Bool(0)
}

func (m *MockAuthorizationService) CanEditCallLog(user *models.User, log *models.CallLog) bool {
	args := m.Called(user, log)
	return args.Bool(0)
}

func (m *MockAuthorizationService) LogSecurityViolation(ctx context.Context, user *models.User, violationType, resource string) {
	m.Called(ctx, user, violationType, resource)
}

// uploadRequest builds a multipart POST carrying one file field, with the
// admin user already injected into the request context.
func uploadRequest(t *testing.T, user *models.User) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "sangat.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("placeholder spreadsheet bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/prospects/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
	return req.WithContext(ctx)
}

func newImportHandlerFixture(t *testing.T) (*ImportHandler, *MockImportService, *MockAuthorizationService) {
	t.Helper()
	importSvc := &MockImportService{}
	authzSvc := &MockAuthorizationService{}
	return NewImportHandler(createTestLogger(), importSvc, authzSvc), importSvc, authzSvc
}

func TestImportSpreadsheetHandler_Accepted(t *testing.T) {
	handler, importSvc, authzSvc := newImportHandlerFixture(t)

	admin := &models.User{ID: "a1", Role: models.RoleAdmin}
	authzSvc.On("CanManageRoster", admin).Return(true)
	importSvc.On("ImportSpreadsheet", mock.Anything, mock.Anything, "sangat.xlsx", admin).
		Return(&services.ImportResult{FileName: "sangat.xlsx", RowCount: 3, Inserted: 3}, nil)

	rec := httptest.NewRecorder()
	handler.ImportSpreadsheet(rec, uploadRequest(t, admin))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inserted":3`)
}

func TestImportSpreadsheetHandler_Forbidden(t *testing.T) {
	handler, importSvc, authzSvc := newImportHandlerFixture(t)

	caller := &models.User{ID: "c1", Role: models.RoleUser}
	authzSvc.On("CanManageRoster", caller).Return(false)
	authzSvc.On("LogSecurityViolation", mock.Anything, caller, "unauthorized_import", "").Return()

	rec := httptest.NewRecorder()
	handler.ImportSpreadsheet(rec, uploadRequest(t, caller))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	importSvc.AssertNotCalled(t, "ImportSpreadsheet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportSpreadsheetHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			"missing required columns",
			&importer.MissingFieldsError{Missing: []importer.Field{importer.FieldMobile}},
			http.StatusUnprocessableEntity,
		},
		{
			"duplicate batch",
			services.ErrDuplicateBatch,
			http.StatusConflict,
		},
		{
			"no data rows",
			services.ErrNoDataRows,
			http.StatusBadRequest,
		},
		{
			"sheet too large",
			&services.TooManyRowsError{Rows: 9000, Limit: 5000},
			http.StatusRequestEntityTooLarge,
		},
		{
			"insert failed mid-batch",
			&services.PartialInsertError{Inserted: 2, Total: 5, Err: errors.New("connection reset")},
			http.StatusInternalServerError,
		},
		{
			"unreadable file",
			errors.New("failed to read workbook: zip: not a valid zip file"),
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, importSvc, authzSvc := newImportHandlerFixture(t)

			admin := &models.User{ID: "a1", Role: models.RoleAdmin}
			authzSvc.On("CanManageRoster", admin).Return(true)
			importSvc.On("ImportSpreadsheet", mock.Anything, mock.Anything, "sangat.xlsx", admin).
				Return(nil, tt.err)

			rec := httptest.NewRecorder()
			handler.ImportSpreadsheet(rec, uploadRequest(t, admin))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestImportSpreadsheetHandler_MissingFile(t *testing.T) {
	handler, importSvc, authzSvc := newImportHandlerFixture(t)

	admin := &models.User{ID: "a1", Role: models.RoleAdmin}
	authzSvc.On("CanManageRoster", admin).Return(true)

	req := httptest.NewRequest(http.MethodPost, "/prospects/import", nil)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, admin)
	rec := httptest.NewRecorder()
	handler.ImportSpreadsheet(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	importSvc.AssertNotCalled(t, "ImportSpreadsheet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
