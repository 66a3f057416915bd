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

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByISIN(ctx context.Context, isin string) (*domain.Asset, error) {
	args := m.Called(ctx, isin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAssetRepository
	service  portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.service = services.NewAssetService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:   "Apple Inc.",
		Symbol: "aapl",
		ISIN:   "us0378331005",
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Name == req.Name && a.Symbol == "AAPL" && a.ISIN == "US0378331005" && a.AssetID != ""
	})).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.Equal("AAPL", asset.Symbol)
	suite.Equal("US0378331005", asset.ISIN)
	suite.False(asset.CreatedAt.IsZero())
	suite.Equal(asset.CreatedAt, asset.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_Duplicate() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:   "Apple Inc.",
		Symbol: "AAPL",
		ISIN:   "US0378331005",
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(apperrors.ErrDuplicate).Once()

	asset, err := suite.service.CreateAsset(ctx, req)

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_Success() {
	ctx := context.Background()
	assetID := uuid.NewString()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &domain.Asset{
		AssetID: assetID,
		Name:    "Apple Inc.",
		Symbol:  "AAPL",
		ISIN:    "US0378331005",
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: createdAt,
		},
	}
	req := dto.UpdateAssetRequest{
		Name:   "Apple Incorporated",
		Symbol: "aapl",
		ISIN:   "US0378331005",
	}

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.AssetID == assetID &&
			a.Name == req.Name &&
			a.Symbol == "AAPL" &&
			a.CreatedAt.Equal(createdAt) &&
			a.LastUpdatedAt.After(createdAt)
	})).Return(nil).Once()

	asset, err := suite.service.UpdateAsset(ctx, assetID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.Equal(req.Name, asset.Name)
	suite.Equal(createdAt, asset.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_NotFound() {
	ctx := context.Background()
	assetID := uuid.NewString()
	req := dto.UpdateAssetRequest{Name: "X", Symbol: "X", ISIN: "US0378331005"}

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(nil, apperrors.ErrNotFound).Once()

	asset, err := suite.service.UpdateAsset(ctx, assetID, req)

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_Success() {
	ctx := context.Background()
	assetID := uuid.NewString()
	expected := &domain.Asset{AssetID: assetID, Symbol: "AAPL"}

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(expected, nil).Once()

	asset, err := suite.service.GetAssetByID(ctx, assetID)

	suite.Require().NoError(err)
	suite.Equal(expected, asset)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestGetAssetBySymbol_UppercasesLookup() {
	ctx := context.Background()
	expected := &domain.Asset{AssetID: uuid.NewString(), Symbol: "AAPL"}

	suite.mockRepo.On("FindAssetBySymbol", ctx, "AAPL").Return(expected, nil).Once()

	asset, err := suite.service.GetAssetBySymbol(ctx, "aapl")

	suite.Require().NoError(err)
	suite.Equal(expected, asset)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestGetAssetByISIN_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAssetByISIN", ctx, "US0000000000").Return(nil, apperrors.ErrNotFound).Once()

	asset, err := suite.service.GetAssetByISIN(ctx, "US0000000000")

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestListAssets_Success() {
	ctx := context.Background()
	expected := []domain.Asset{{Symbol: "AAPL"}, {Symbol: "MSFT"}}

	suite.mockRepo.On("ListAssets", ctx).Return(expected, nil).Once()

	assets, err := suite.service.ListAssets(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, assets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestListAssets_Empty() {
	ctx := context.Background()
	var expected []domain.Asset

	suite.mockRepo.On("ListAssets", ctx).Return(expected, nil).Once()

	assets, err := suite.service.ListAssets(ctx)

	suite.Require().NoError(err)
	suite.Empty(assets)
	suite.NotNil(assets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestListAssets_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListAssets", ctx).Return(nil, expectedErr).Once()

	assets, err := suite.service.ListAssets(ctx)

	suite.Require().Error(err)
	suite.Nil(assets)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAssetService(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
