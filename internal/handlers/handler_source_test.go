package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
	"github.com/quantfolio/asset_price_api/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SourceService ---
type MockSourceService struct {
	mock.Mock
}

func (m *MockSourceService) CreateSource(ctx context.Context, req dto.CreateSourceRequest) (*domain.Source, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceService) UpdateSource(ctx context.Context, sourceID string, req dto.UpdateSourceRequest) (*domain.Source, error) {
	args := m.Called(ctx, sourceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceService) DeleteSource(ctx context.Context, sourceID string) error {
	args := m.Called(ctx, sourceID)
	return args.Error(0)
}

func (m *MockSourceService) GetSourceByID(ctx context.Context, sourceID string) (*domain.Source, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceService) GetSourceByName(ctx context.Context, name string) (*domain.Source, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceService) ListSources(ctx context.Context) ([]domain.Source, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Source), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SourceSvcFacade = (*MockSourceService)(nil)

// --- Test Suite ---
type SourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSourceService
}

func (suite *SourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()
	suite.router = gin.New()
	suite.mockService = new(MockSourceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSourceRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *SourceHandlerTestSuite) TestCreateSource_Success() {
	req := dto.CreateSourceRequest{Name: "Yahoo Finance"}
	expected := &domain.Source{SourceID: uuid.NewString(), Name: req.Name}

	suite.mockService.On("CreateSource", mock.Anything, req).Return(expected, nil).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/sources", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SourceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SourceID, resp.SourceID)
	suite.Equal(expected.Name, resp.Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestCreateSource_MissingName() {
	body := []byte(`{}`)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/sources", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateSource", mock.Anything, mock.Anything)
}

func (suite *SourceHandlerTestSuite) TestCreateSource_Duplicate() {
	req := dto.CreateSourceRequest{Name: "Yahoo Finance"}

	suite.mockService.On("CreateSource", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/sources", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestUpdateSource_Success() {
	sourceID := uuid.NewString()
	req := dto.UpdateSourceRequest{Name: "Yahoo Finance API"}
	expected := &domain.Source{SourceID: sourceID, Name: req.Name}

	suite.mockService.On("UpdateSource", mock.Anything, sourceID, req).Return(expected, nil).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPut, "/api/v1/sources/"+sourceID, bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SourceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(req.Name, resp.Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestUpdateSource_NotFound() {
	sourceID := uuid.NewString()
	req := dto.UpdateSourceRequest{Name: "Bloomberg"}

	suite.mockService.On("UpdateSource", mock.Anything, sourceID, req).Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPut, "/api/v1/sources/"+sourceID, bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestDeleteSource_Success() {
	sourceID := uuid.NewString()

	suite.mockService.On("DeleteSource", mock.Anything, sourceID).Return(nil).Once()

	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/v1/sources/"+sourceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestDeleteSource_NotFound() {
	sourceID := uuid.NewString()

	suite.mockService.On("DeleteSource", mock.Anything, sourceID).Return(apperrors.ErrNotFound).Once()

	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/v1/sources/"+sourceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestGetSourceByName_Success() {
	expected := &domain.Source{SourceID: uuid.NewString(), Name: "Bloomberg"}

	suite.mockService.On("GetSourceByName", mock.Anything, "Bloomberg").Return(expected, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/sources/name/Bloomberg", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SourceHandlerTestSuite) TestListSources_Success() {
	expected := []domain.Source{
		{SourceID: uuid.NewString(), Name: "Yahoo Finance"},
		{SourceID: uuid.NewString(), Name: "Bloomberg"},
	}

	suite.mockService.On("ListSources", mock.Anything).Return(expected, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/sources", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.SourceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSourceHandler(t *testing.T) {
	suite.Run(t, new(SourceHandlerTestSuite))
}
