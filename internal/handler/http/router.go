package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lkohler/citysignal/internal/handler/http/middleware"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler  *UserHandler
	issueHandler *IssueHandler
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, issueUsecase usecasecontract.IIssueUseCase, baseURL string) *Router {
	return &Router{
		userHandler:  NewUserHandler(userUsecase, baseURL),
		issueHandler: NewIssueHandler(issueUsecase, baseURL),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Location", "Link", "X-Total-Count", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := router.Group("/users")
	{
		users.POST("", r.userHandler.Create)
		users.GET("", r.userHandler.List)
		users.GET("/:id", r.userHandler.Get)
		users.PATCH("/:id", r.userHandler.Patch)
		users.PUT("/:id", r.userHandler.Put)
		users.DELETE("/:id", r.userHandler.Delete)
	}

	issues := router.Group("/issues")
	{
		issues.POST("", r.issueHandler.Create)
		issues.GET("", r.issueHandler.List)
		issues.GET("/:id", r.issueHandler.Get)
		issues.PATCH("/:id", r.issueHandler.Patch)
		issues.DELETE("/:id", r.issueHandler.Delete)
	}
}
