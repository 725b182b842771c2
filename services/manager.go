package services

import (
	"printdoot_server/database"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService   *CacheService
	EmailService   *EmailService
	HealthService  *HealthService
	UserService    *UserService
	CatalogService *CatalogService
	CounterService *CounterService
	OrderService   *OrderService
	ReportService  *ReportService
	ReviewService  *ReviewService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) (*ServiceManager, error) {
	cacheService := NewCacheService(logger, cfg)
	userService := NewUserService(logger, db)
	emailService := NewEmailService(logger, cfg, userService)
	healthService := NewHealthService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db, cacheService)
	counterService := NewCounterService(logger, db)

	assetService, err := NewS3AssetService(logger, cfg)
	if err != nil {
		return nil, err
	}

	orderService := NewOrderService(logger, cfg, db, counterService, catalogService, userService, emailService, assetService)
	reportService := NewReportService(logger, db, orderService, userService)
	reviewService := NewReviewService(logger, db, catalogService, userService)

	return &ServiceManager{
		CacheService:   cacheService,
		EmailService:   emailService,
		HealthService:  healthService,
		UserService:    userService,
		CatalogService: catalogService,
		CounterService: counterService,
		OrderService:   orderService,
		ReportService:  reportService,
		ReviewService:  reviewService,
	}, nil
}
