package routes

import (
	"log"

	"nexus-hub-backend/internal/api/handlers"
	"nexus-hub-backend/internal/api/middleware"
	"nexus-hub-backend/internal/auth"
	"nexus-hub-backend/internal/config"
	"nexus-hub-backend/internal/database/models"
	"nexus-hub-backend/internal/repository"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	contactRepo := repository.NewContactRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	billingPlanRepo := repository.NewBillingPlanRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, contactRepo, billingPlanRepo, validator)
	contactService := service.NewContactService(contactRepo, validator)
	locationService := service.NewLocationService(locationRepo, companyRepo, validator)
	billingPlanService := service.NewBillingPlanService(billingPlanRepo)

	// Initialize auth service and middleware
	authService, err := auth.NewAuthService(userRepo, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	contactHandler := handlers.NewContactHandler(contactService)
	locationHandler := handlers.NewLocationHandler(locationService)
	billingPlanHandler := handlers.NewBillingPlanHandler(billingPlanService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token endpoint stays outside the authenticated group
	api := router.Group("/api")
	api.POST("/token", authHandler.IssueToken)

	// All resource endpoints require authentication
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())

	writers := authMiddleware.RequirePermission(models.PermissionAdmin, models.PermissionTechnician)

	{
		// Company routes
		companies := protected.Group("/companies")
		{
			companies.GET("", companyHandler.ListCompanies)
			companies.POST("", writers, companyHandler.CreateCompany)
			companies.GET("/:account_number", authMiddleware.RequireCompanyScope(), companyHandler.GetCompany)
			companies.PUT("/:account_number", writers, companyHandler.UpdateCompany)
			companies.PATCH("/:account_number", writers, companyHandler.PatchCompany)
			companies.GET("/:account_number/features", authMiddleware.RequireCompanyScope(), companyHandler.GetCompanyFeatures)

			// Location routes, scoped to their company
			companies.GET("/:account_number/locations", authMiddleware.RequireCompanyScope(), locationHandler.ListLocations)
			companies.POST("/:account_number/locations", writers, locationHandler.CreateLocation)
			companies.PUT("/:account_number/locations/main", writers, locationHandler.UpsertMainOffice)
			companies.DELETE("/:account_number/locations/:id", writers, locationHandler.DeleteLocation)
		}

		// Contact routes
		contacts := protected.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", writers, contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", writers, contactHandler.UpdateContact)
		}

		// Billing plan routes
		billingPlans := protected.Group("/billing-plans")
		{
			billingPlans.GET("", billingPlanHandler.ListBillingPlans)
			billingPlans.GET("/names", billingPlanHandler.ListPlanNames)
			billingPlans.GET("/:plan_name", billingPlanHandler.GetBillingPlan)
		}

		protected.GET("/feature-options", billingPlanHandler.ListFeatureOptions)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
