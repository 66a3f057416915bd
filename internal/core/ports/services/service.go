package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Asset  AssetSvcFacade
	Source SourceSvcFacade
	Price  PriceSvcFacade
	Seeder SeederSvc
}

// SeederSvc populates initial reference data on startup.
type SeederSvc interface {
	SeedReferenceData(ctx context.Context) error
}
