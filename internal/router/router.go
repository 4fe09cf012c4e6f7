package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hirehub-dev/hirehub/internal/handlers"
	"github.com/hirehub-dev/hirehub/internal/middleware"
	"github.com/hirehub-dev/hirehub/internal/store"
	"github.com/hirehub-dev/hirehub/internal/types"
)

func NewRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(st.Users)
	profileHandler := handlers.NewProfileHandler(st.Employees, st.Employers)
	listingHandler := handlers.NewListingHandler(st.Listings)
	applicationHandler := handlers.NewApplicationHandler(st.Listings, st.Employees, st.Applications, st.Statuses)

	authRequired := middleware.AuthMiddleware(st.Users)
	employerOnly := middleware.RequireEmployer(st.Employers)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/token/", authHandler.Token)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		listings := api.Group("/job-listings")
		{
			listings.GET("/", listingHandler.Browse)
			listings.POST("/:listing_id/apply/", authRequired, applicationHandler.Apply)
			listings.GET("/:listing_id/applications/", authRequired, employerOnly, applicationHandler.ListForListing)
			listings.PUT("/:listing_id", authRequired, employerOnly, listingHandler.Update)
			listings.PATCH("/:listing_id", authRequired, employerOnly, listingHandler.Update)
		}

		employer := api.Group("/employer")
		{
			employer.GET("/job-listings/", authRequired, employerOnly, listingHandler.ListOwn)
			employer.POST("/job-listings/", authRequired, employerOnly, listingHandler.Create)
			employer.POST("/update-profile/", authRequired, profileHandler.CreateEmployerProfile)
			employer.PUT("/update-profile/", authRequired, profileHandler.UpdateEmployerProfile)
		}

		employee := api.Group("/employee")
		{
			employee.POST("/update-profile/", authRequired, profileHandler.CreateEmployeeProfile)
			employee.PUT("/update-profile/", authRequired, profileHandler.UpdateEmployeeProfile)
			employee.GET("/applications/", authRequired, applicationHandler.ListMine)
		}

		applications := api.Group("/applications")
		{
			applications.PUT("/:application_id/status/", authRequired, employerOnly, applicationHandler.UpdateStatus)
			applications.DELETE("/:application_id", authRequired, applicationHandler.Withdraw)
		}
	}

	return r
}
