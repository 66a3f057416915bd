package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/core/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SourceRepository ---
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) FindSourceByID(ctx context.Context, sourceID string) (*domain.Source, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceRepository) FindSourceByName(ctx context.Context, name string) (*domain.Source, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Source), args.Error(1)
}

func (m *MockSourceRepository) ListSources(ctx context.Context) ([]domain.Source, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Source), args.Error(1)
}

func (m *MockSourceRepository) SaveSource(ctx context.Context, source domain.Source) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockSourceRepository) UpdateSource(ctx context.Context, source domain.Source) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockSourceRepository) DeleteSource(ctx context.Context, sourceID string) error {
	args := m.Called(ctx, sourceID)
	return args.Error(0)
}

// --- Test Suite ---
type SourceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSourceRepository
	service  portssvc.SourceSvcFacade
}

func (suite *SourceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSourceRepository)
	suite.service = services.NewSourceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *SourceServiceTestSuite) TestCreateSource_Success() {
	ctx := context.Background()
	req := dto.CreateSourceRequest{Name: "Yahoo Finance"}

	suite.mockRepo.On("SaveSource", ctx, mock.MatchedBy(func(s domain.Source) bool {
		return s.Name == req.Name && s.SourceID != ""
	})).Return(nil).Once()

	source, err := suite.service.CreateSource(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(source)
	suite.Equal(req.Name, source.Name)
	suite.False(source.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestCreateSource_Duplicate() {
	ctx := context.Background()
	req := dto.CreateSourceRequest{Name: "Yahoo Finance"}

	suite.mockRepo.On("SaveSource", ctx, mock.AnythingOfType("domain.Source")).Return(apperrors.ErrDuplicate).Once()

	source, err := suite.service.CreateSource(ctx, req)

	suite.Require().Error(err)
	suite.Nil(source)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestUpdateSource_Success() {
	ctx := context.Background()
	sourceID := uuid.NewString()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &domain.Source{
		SourceID: sourceID,
		Name:     "Yahoo Finance",
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: createdAt,
		},
	}
	req := dto.UpdateSourceRequest{Name: "Yahoo Finance API"}

	suite.mockRepo.On("FindSourceByID", ctx, sourceID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateSource", ctx, mock.MatchedBy(func(s domain.Source) bool {
		return s.SourceID == sourceID && s.Name == req.Name && s.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	source, err := suite.service.UpdateSource(ctx, sourceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(source)
	suite.Equal(req.Name, source.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestUpdateSource_NotFound() {
	ctx := context.Background()
	sourceID := uuid.NewString()
	req := dto.UpdateSourceRequest{Name: "Bloomberg"}

	suite.mockRepo.On("FindSourceByID", ctx, sourceID).Return(nil, apperrors.ErrNotFound).Once()

	source, err := suite.service.UpdateSource(ctx, sourceID, req)

	suite.Require().Error(err)
	suite.Nil(source)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSource", mock.Anything, mock.Anything)
}

func (suite *SourceServiceTestSuite) TestDeleteSource_Success() {
	ctx := context.Background()
	sourceID := uuid.NewString()

	suite.mockRepo.On("DeleteSource", ctx, sourceID).Return(nil).Once()

	err := suite.service.DeleteSource(ctx, sourceID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestDeleteSource_NotFound() {
	ctx := context.Background()
	sourceID := uuid.NewString()

	suite.mockRepo.On("DeleteSource", ctx, sourceID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSource(ctx, sourceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestGetSourceByName_Success() {
	ctx := context.Background()
	expected := &domain.Source{SourceID: uuid.NewString(), Name: "Bloomberg"}

	suite.mockRepo.On("FindSourceByName", ctx, "Bloomberg").Return(expected, nil).Once()

	source, err := suite.service.GetSourceByName(ctx, "Bloomberg")

	suite.Require().NoError(err)
	suite.Equal(expected, source)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestListSources_Empty() {
	ctx := context.Background()
	var expected []domain.Source

	suite.mockRepo.On("ListSources", ctx).Return(expected, nil).Once()

	sources, err := suite.service.ListSources(ctx)

	suite.Require().NoError(err)
	suite.Empty(sources)
	suite.NotNil(sources)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SourceServiceTestSuite) TestListSources_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListSources", ctx).Return(nil, expectedErr).Once()

	sources, err := suite.service.ListSources(ctx)

	suite.Require().Error(err)
	suite.Nil(sources)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestSourceService(t *testing.T) {
	suite.Run(t, new(SourceServiceTestSuite))
}
