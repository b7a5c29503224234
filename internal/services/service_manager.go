package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/cache"
	"github.com/MFC-2025/recruitment-admin-service/internal/events"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	EnableDebugLogging bool
	LogLevel           slog.Level

	Auth AuthConfig

	DefaultTimeout time.Duration
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	db                *gorm.DB
	repo              repositories.Repository
	logger            *slog.Logger
	validator         *validator.Validator
	businessValidator *validator.BusinessValidator
	eventPublisher    events.EventPublisher
	cacheManager      *cache.CacheManager
	config            ServiceManagerConfig

	// Service instances
	applicantService   ApplicantService
	segregationService SegregationService
	authService        AuthService
	meetingService     MeetingService
	dashboardService   DashboardService
	exportService      ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(
	db *gorm.DB,
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	bv *validator.BusinessValidator,
	publisher events.EventPublisher,
	cacheManager *cache.CacheManager,
	config ServiceManagerConfig,
) ServiceManager {
	return &serviceManager{
		db:                db,
		repo:              repo,
		logger:            logger,
		validator:         v,
		businessValidator: bv,
		eventPublisher:    publisher,
		cacheManager:      cacheManager,
		config:            config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.applicantService = NewApplicantService(sm.repo, sm.db, sm.logger, sm.validator, sm.businessValidator, sm.eventPublisher, sm.cacheManager)
	sm.segregationService = NewSegregationService(sm.repo, sm.db, sm.logger)
	sm.authService = NewAuthService(sm.repo, sm.logger, sm.validator, sm.config.Auth)
	sm.meetingService = NewMeetingService(sm.repo, sm.logger, sm.validator, sm.businessValidator, sm.eventPublisher, sm.cacheManager)
	sm.dashboardService = NewDashboardService(sm.repo, sm.db, sm.logger, sm.cacheManager)
	sm.exportService = NewExportService(sm.applicantService, sm.logger, sm.validator)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// Service getters
func (sm *serviceManager) Applicant() ApplicantService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.applicantService
}

func (sm *serviceManager) Segregation() SegregationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.segregationService
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) Meeting() MeetingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.meetingService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.dashboardService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.eventPublisher != nil {
		if err := sm.eventPublisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	if err := sm.repo.Close(); err != nil {
		sm.logger.Error("Failed to close repository", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}
