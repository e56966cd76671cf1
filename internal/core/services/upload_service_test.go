package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portssvc "github.com/finconsulta/doc_ingest_app/internal/core/ports/services"
	"github.com/finconsulta/doc_ingest_app/internal/core/services"
	"github.com/finconsulta/doc_ingest_app/internal/dto"
	"github.com/finconsulta/doc_ingest_app/internal/utils/fieldmap"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func decimalFrom(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- Mock UploadRepository ---
type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.Upload, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadRepository) ListUploadsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Upload, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Upload), args.Error(1)
}

func (m *MockUploadRepository) SaveUpload(ctx context.Context, upload domain.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadRepository) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus, errorMessage *string) error {
	args := m.Called(ctx, uploadID, status, errorMessage)
	return args.Error(0)
}

func (m *MockUploadRepository) CompleteUpload(ctx context.Context, tx pgx.Tx, uploadID string, processedAt time.Time) error {
	args := m.Called(ctx, tx, uploadID, processedAt)
	return args.Error(0)
}

func (m *MockUploadRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockUploadRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockUploadRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ExtractionRepository ---
type MockExtractionRepository struct {
	mock.Mock
}

func (m *MockExtractionRepository) FindExtractionByUploadID(ctx context.Context, uploadID string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractionRepository) SaveExtraction(ctx context.Context, tx pgx.Tx, extraction domain.ExtractionResult) error {
	args := m.Called(ctx, tx, extraction)
	return args.Error(0)
}

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) ListRecordsByUploadID(ctx context.Context, uploadID string) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordRepository) SaveRecords(ctx context.Context, tx pgx.Tx, records []domain.FinancialRecord) error {
	args := m.Called(ctx, tx, records)
	return args.Error(0)
}

// --- Test Suite ---
type UploadServiceTestSuite struct {
	suite.Suite
	mockUploadRepo     *MockUploadRepository
	mockExtractionRepo *MockExtractionRepository
	mockRecordRepo     *MockRecordRepository
	service            portssvc.UploadSvcFacade
}

func (suite *UploadServiceTestSuite) SetupTest() {
	suite.mockUploadRepo = new(MockUploadRepository)
	suite.mockExtractionRepo = new(MockExtractionRepository)
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.service = services.NewUploadService(
		suite.mockUploadRepo,
		suite.mockExtractionRepo,
		suite.mockRecordRepo,
		fieldmap.DefaultDictionary(),
	)
}

func productionSalesCSV() []byte {
	return []byte("fecha,producto,kgs,precio,facturacionNeta\n" +
		"15/03/2024,Tomate,1000,\"0,52\",\"520,00\"\n" +
		"16/03/2024,Pepino,800,\"0,44\",\"352,00\"\n")
}

func salesRequest() dto.ProcessFileRequest {
	content := productionSalesCSV()
	return dto.ProcessFileRequest{
		Filename:     "ventas_marzo.csv",
		MIMEType:     "text/csv",
		Size:         int64(len(content)),
		ClientName:   "Finca El Prado",
		DocumentType: domain.DocumentTypeProductionSales,
		Content:      content,
	}
}

// --- Preview ---

func (suite *UploadServiceTestSuite) TestPreview_Success() {
	ctx := context.Background()

	result, err := suite.service.Preview(ctx, salesRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.DocumentTypeProductionSales, result.DocumentType)
	suite.Equal(2, result.RecordCount)
	suite.Require().Len(result.Rows, 2)
	suite.Equal("Tomate", result.Rows[0].GetString("producto"))
	suite.Equal("1000", result.Rows[0].GetString("kgs"))

	// preview never touches persistence
	suite.mockUploadRepo.AssertNotCalled(suite.T(), "SaveUpload", mock.Anything, mock.Anything)
}

func (suite *UploadServiceTestSuite) TestPreview_UnknownDocumentType() {
	ctx := context.Background()
	req := salesRequest()
	req.DocumentType = "receipts"

	result, err := suite.service.Preview(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
}

func (suite *UploadServiceTestSuite) TestPreview_EmptyDocument() {
	ctx := context.Background()
	req := salesRequest()
	req.Content = []byte("fecha,producto\n")

	result, err := suite.service.Preview(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmptyDocument)
	suite.Nil(result)
}

// --- ProcessAndStore ---

func (suite *UploadServiceTestSuite) TestProcessAndStore_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := salesRequest()

	var savedUploadID string
	suite.mockUploadRepo.On("SaveUpload", ctx, mock.MatchedBy(func(u domain.Upload) bool {
		savedUploadID = u.UploadID
		return u.Status == domain.UploadStatusProcessing &&
			u.Filename == req.Filename &&
			u.FileType == "csv" &&
			u.ClientName == req.ClientName &&
			u.DocumentType == domain.DocumentTypeProductionSales &&
			u.UserID == userID
	})).Return(nil).Once()
	suite.mockUploadRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExtractionRepo.On("SaveExtraction", ctx, mock.Anything, mock.MatchedBy(func(e domain.ExtractionResult) bool {
		return e.RecordCount == 2 && e.DocumentType == domain.DocumentTypeProductionSales
	})).Return(nil).Once()
	suite.mockRecordRepo.On("SaveRecords", ctx, mock.Anything, mock.MatchedBy(func(records []domain.FinancialRecord) bool {
		if len(records) != 2 {
			return false
		}
		first := records[0]
		return first.RecordType == domain.RecordTypeProductionSale &&
			first.Amount == 52000 &&
			first.QuantityKg != nil && first.QuantityKg.Equal(decimalFrom("1000"))
	})).Return(nil).Once()
	suite.mockUploadRepo.On("CompleteUpload", ctx, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUploadRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.ProcessAndStore(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(outcome)
	suite.Equal(savedUploadID, outcome.UploadID)
	suite.NotEmpty(outcome.ExtractionID)
	suite.Equal(2, outcome.RecordCount)
	suite.Equal(0, outcome.CoercionStats.Total())

	suite.mockUploadRepo.AssertExpectations(suite.T())
	suite.mockExtractionRepo.AssertExpectations(suite.T())
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *UploadServiceTestSuite) TestProcessAndStore_UnsupportedFormat() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := salesRequest()
	req.Filename = "ventas.docx"
	req.MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	suite.mockUploadRepo.On("SaveUpload", ctx, mock.Anything).Return(nil).Once()
	suite.mockUploadRepo.On("UpdateUploadStatus", ctx, mock.AnythingOfType("string"), domain.UploadStatusError, mock.MatchedBy(func(msg *string) bool {
		return msg != nil && *msg != ""
	})).Return(nil).Once()

	outcome, err := suite.service.ProcessAndStore(ctx, req, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedFormat)
	suite.Nil(outcome)

	suite.mockUploadRepo.AssertExpectations(suite.T())
	suite.mockExtractionRepo.AssertNotCalled(suite.T(), "SaveExtraction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UploadServiceTestSuite) TestProcessAndStore_PersistFailureRollsBack() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUploadRepo.On("SaveUpload", ctx, mock.Anything).Return(nil).Once()
	suite.mockUploadRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExtractionRepo.On("SaveExtraction", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrValidation).Once()
	suite.mockUploadRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	suite.mockUploadRepo.On("UpdateUploadStatus", ctx, mock.AnythingOfType("string"), domain.UploadStatusError, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.ProcessAndStore(ctx, salesRequest(), userID)

	suite.Require().Error(err)
	suite.Nil(outcome)

	suite.mockUploadRepo.AssertExpectations(suite.T())
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecords", mock.Anything, mock.Anything, mock.Anything)
	suite.mockUploadRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

// --- CreateUpload / ProcessUpload ---

func (suite *UploadServiceTestSuite) TestCreateUpload_StartsPending() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateUploadRequest{
		Filename:     "extracto.xlsx",
		FileType:     "xlsx",
		FileSize:     2048,
		ClientName:   "Finca El Prado",
		DocumentType: "bank_statements",
	}

	suite.mockUploadRepo.On("SaveUpload", ctx, mock.MatchedBy(func(u domain.Upload) bool {
		return u.Status == domain.UploadStatusPending && u.DocumentType == domain.DocumentTypeBankStatements
	})).Return(nil).Once()

	upload, err := suite.service.CreateUpload(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(upload)
	suite.Equal(domain.UploadStatusPending, upload.Status)
	suite.NotEmpty(upload.UploadID)
	suite.Nil(upload.ProcessedAt)

	suite.mockUploadRepo.AssertExpectations(suite.T())
}

func (suite *UploadServiceTestSuite) TestProcessUpload_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	uploadID := uuid.NewString()
	pending := &domain.Upload{
		UploadID:     uploadID,
		Filename:     "ventas_marzo.csv",
		FileType:     "csv",
		ClientName:   "Finca El Prado",
		DocumentType: domain.DocumentTypeProductionSales,
		Status:       domain.UploadStatusPending,
		UploadedAt:   time.Now(),
		UserID:       userID,
	}

	suite.mockUploadRepo.On("FindUploadByID", ctx, uploadID).Return(pending, nil).Once()
	suite.mockUploadRepo.On("UpdateUploadStatus", ctx, uploadID, domain.UploadStatusProcessing, (*string)(nil)).Return(nil).Once()
	suite.mockUploadRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExtractionRepo.On("SaveExtraction", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRecordRepo.On("SaveRecords", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockUploadRepo.On("CompleteUpload", ctx, mock.Anything, uploadID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUploadRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.ProcessUpload(ctx, uploadID, productionSalesCSV(), userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(outcome)
	suite.Equal(uploadID, outcome.UploadID)
	suite.Equal(2, outcome.RecordCount)

	suite.mockUploadRepo.AssertExpectations(suite.T())
}

func (suite *UploadServiceTestSuite) TestProcessUpload_AlreadyCompleted() {
	ctx := context.Background()
	userID := uuid.NewString()
	uploadID := uuid.NewString()
	completed := &domain.Upload{
		UploadID: uploadID,
		Status:   domain.UploadStatusCompleted,
		UserID:   userID,
	}

	suite.mockUploadRepo.On("FindUploadByID", ctx, uploadID).Return(completed, nil).Once()

	outcome, err := suite.service.ProcessUpload(ctx, uploadID, productionSalesCSV(), userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(outcome)

	suite.mockUploadRepo.AssertNotCalled(suite.T(), "UpdateUploadStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UploadServiceTestSuite) TestProcessUpload_OtherUsersUpload() {
	ctx := context.Background()
	uploadID := uuid.NewString()
	foreign := &domain.Upload{
		UploadID: uploadID,
		Status:   domain.UploadStatusPending,
		UserID:   uuid.NewString(),
	}

	suite.mockUploadRepo.On("FindUploadByID", ctx, uploadID).Return(foreign, nil).Once()

	outcome, err := suite.service.ProcessUpload(ctx, uploadID, productionSalesCSV(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(outcome)
}

// --- ListUploads / GetUploadByID ---

func (suite *UploadServiceTestSuite) TestListUploads_DefaultsPagination() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUploadRepo.On("ListUploadsByUser", ctx, userID, 10, 0).Return([]domain.Upload{}, nil).Once()

	uploads, err := suite.service.ListUploads(ctx, userID, 0, -5)

	suite.Require().NoError(err)
	suite.NotNil(uploads)
	suite.Empty(uploads)

	suite.mockUploadRepo.AssertExpectations(suite.T())
}

func (suite *UploadServiceTestSuite) TestListUploads_ClampsLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUploadRepo.On("ListUploadsByUser", ctx, userID, 100, 20).Return([]domain.Upload{}, nil).Once()

	_, err := suite.service.ListUploads(ctx, userID, 500, 20)

	suite.Require().NoError(err)
	suite.mockUploadRepo.AssertExpectations(suite.T())
}

func (suite *UploadServiceTestSuite) TestGetUploadByID_WithoutExtraction() {
	ctx := context.Background()
	userID := uuid.NewString()
	uploadID := uuid.NewString()
	upload := &domain.Upload{
		UploadID: uploadID,
		Status:   domain.UploadStatusPending,
		UserID:   userID,
	}

	suite.mockUploadRepo.On("FindUploadByID", ctx, uploadID).Return(upload, nil).Once()
	suite.mockExtractionRepo.On("FindExtractionByUploadID", ctx, uploadID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRecordRepo.On("ListRecordsByUploadID", ctx, uploadID).Return(nil, nil).Once()

	detail, err := suite.service.GetUploadByID(ctx, uploadID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Equal(uploadID, detail.Upload.UploadID)
	suite.Nil(detail.Extraction)
	suite.NotNil(detail.Records)
	suite.Empty(detail.Records)
}

func (suite *UploadServiceTestSuite) TestGetUploadByID_NotOwned() {
	ctx := context.Background()
	uploadID := uuid.NewString()
	upload := &domain.Upload{
		UploadID: uploadID,
		UserID:   uuid.NewString(),
	}

	suite.mockUploadRepo.On("FindUploadByID", ctx, uploadID).Return(upload, nil).Once()

	detail, err := suite.service.GetUploadByID(ctx, uploadID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(detail)
}

func TestUploadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UploadServiceTestSuite))
}
