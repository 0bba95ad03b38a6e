package routes

import (
	"team-management-backend/internal/api/handlers"
	"team-management-backend/internal/api/middleware"
	"team-management-backend/internal/auth"
	"team-management-backend/internal/config"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Services bundles the business services the API is built on
type Services struct {
	Teams       service.TeamServiceInterface
	Members     service.MemberServiceInterface
	Invitations service.InvitationServiceInterface
	Ratings     service.RatingServiceInterface
	Statistics  service.StatisticsServiceInterface
	Directory   service.UserDirectory
}

// NewServices wires the services on top of a store. directory may be nil.
func NewServices(store repository.Store, directory service.UserDirectory) *Services {
	validator := service.NewValidator()
	memberService := service.NewMemberService(store, directory, validator)

	return &Services{
		Teams:       service.NewTeamService(store, validator),
		Members:     memberService,
		Invitations: service.NewInvitationService(store, memberService, validator),
		Ratings:     service.NewRatingService(store, validator),
		Statistics:  service.NewStatisticsService(store),
		Directory:   directory,
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	log := logger.New()

	directory, err := service.NewUserDirectory(cfg)
	if err != nil {
		log.WithError(err).Warn("User directory disabled, memberships will be returned without identity")
		directory = nil
	}

	var authService *auth.AuthService
	if cfg.JWTEnabled() {
		authService, err = auth.NewAuthService(cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Bearer token validation disabled")
			authService = nil
		}
	}

	services := NewServices(repository.NewStore(db), directory)
	return NewRouter(cfg, services, handlers.NewHealthHandler(db, Version), authService)
}

// NewRouter builds the gin engine around already constructed services.
// authService may be nil, in which case only the X-User-ID header identifies the actor.
func NewRouter(cfg *config.Config, services *Services, healthHandler *handlers.HealthHandler, authService *auth.AuthService) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(auth.NewAuthMiddleware(authService).ResolveActor())

	teamHandler := handlers.NewTeamHandler(services.Teams)
	memberHandler := handlers.NewMemberHandler(services.Members)
	invitationHandler := handlers.NewInvitationHandler(services.Invitations)
	ratingHandler := handlers.NewRatingHandler(services.Ratings)
	statisticsHandler := handlers.NewStatisticsHandler(services.Statistics)

	if healthHandler != nil {
		router.GET("/health", healthHandler.Health)
		router.GET("/health/ready", healthHandler.Ready)
		router.GET("/health/live", healthHandler.Live)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/by-sport/:sportTypeId", teamHandler.GetTeamsBySportType)
			teams.GET("/by-rating", teamHandler.GetTeamsByMinRating)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.PATCH("/:id/active", teamHandler.SetTeamActive)
			teams.PATCH("/:id/approval", teamHandler.SetTeamApproval)
			teams.DELETE("/:id", teamHandler.DeleteTeam)

			teams.GET("/:id/members", memberHandler.ListTeamMembers)
			teams.GET("/:id/invitations", invitationHandler.ListTeamInvitations)
			teams.GET("/:id/ratings", ratingHandler.ListTeamRatings)

			teams.GET("/:id/statistics", statisticsHandler.GetStatistics)
			teams.POST("/:id/statistics", statisticsHandler.InitializeStatistics)
			teams.PUT("/:id/statistics/match", statisticsHandler.RecordMatch)
			teams.PUT("/:id/statistics/tournaments-won", statisticsHandler.IncrementTournamentsWon)
			teams.DELETE("/:id/statistics", statisticsHandler.DeleteStatistics)
		}

		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.PATCH("/:id/state", memberHandler.SetMemberState)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		invitations := v1.Group("/invitations")
		{
			invitations.GET("", invitationHandler.ListInvitations)
			invitations.POST("", invitationHandler.CreateInvitation)
			invitations.GET("/:id", invitationHandler.GetInvitation)
			invitations.PUT("/:id/response", invitationHandler.RespondInvitation)
			invitations.DELETE("/:id", invitationHandler.DeleteInvitation)
		}

		ratings := v1.Group("/ratings")
		{
			ratings.POST("", ratingHandler.CreateRating)
			ratings.GET("/lookup", ratingHandler.LookupRating)
			ratings.GET("/:id", ratingHandler.GetRating)
			ratings.PUT("/:id", ratingHandler.UpdateRating)
			ratings.DELETE("/:id", ratingHandler.DeleteRating)
		}

		users := v1.Group("/users/:userId")
		{
			if services.Directory != nil {
				users.GET("", handlers.NewDirectoryHandler(services.Directory).GetUser)
			}
			users.GET("/memberships", memberHandler.ListUserMemberships)
			users.GET("/invitations", invitationHandler.ListUserInvitations)
			users.GET("/ratings", ratingHandler.ListEvaluatorRatings)
		}
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
