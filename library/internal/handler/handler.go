package handler

import (
	"net/http"

	md "github.com/Astemirdum/library-management/pkg/middleware"

	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/Astemirdum/library-management/pkg/serializer"
	"github.com/Astemirdum/library-management/pkg/validate"
	_ "github.com/Astemirdum/library-management/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc   AuthService
	userSvc   UserService
	bookSvc   BookService
	borrowSvc BorrowService
	tokens    *auth.TokenManager
	log       *zap.Logger
}

func New(svc Services, tokens *auth.TokenManager, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:   svc,
		userSvc:   svc,
		bookSvc:   svc,
		borrowSvc: svc,
		tokens:    tokens,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.JSONSerializer = serializer.NewJSONSerializer()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/", h.Root)
	base.GET("/health", h.Health)
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/token", h.LoginForm)
	api.POST("/auth/refresh-token", h.RefreshToken)
	api.POST("/auth/refreshToken", h.RefreshToken)
	api.GET("/auth/refresh", h.RefreshFromHeader)
	api.POST("/auth/error", h.BackendError)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)

	authed := api.Group("", md.JwtAuthentication(h.tokens, h.authSvc))
	admin := md.RequireAdmin

	authed.GET("/auth/getUserInfo", h.GetUserInfo)
	authed.GET("/auth/getUser", h.GetUserInfo)

	authed.GET("/users", h.ListUsers, admin)
	authed.POST("/users", h.CreateUser, admin)
	authed.PUT("/users", h.UpdateProfile)
	authed.PATCH("/users/change-password", h.ChangePassword)
	authed.POST("/users/batch-delete", h.DeleteUsers, admin)
	authed.GET("/users/stats/summary", h.UserStats)
	authed.GET("/users/:id", h.GetUser)
	authed.PUT("/users/:id", h.UpdateUser, admin)
	authed.DELETE("/users/:id", h.DeleteUser, admin)
	authed.PATCH("/users/:id/reset-password", h.ResetPassword, admin)
	authed.POST("/users/:id/toggle-status", h.ToggleUserStatus, admin)
	authed.GET("/statistics", h.Statistics)

	authed.GET("/books", h.ListBooks)
	authed.GET("/books/categories/list", h.Categories)
	authed.GET("/books/authors/list", h.Authors)
	authed.GET("/books/:id", h.GetBook)
	authed.POST("/books", h.CreateBook, admin)
	authed.POST("/books/batch-delete", h.DeleteBooks, admin)
	authed.PUT("/books/:id", h.UpdateBook, admin)
	authed.DELETE("/books/:id", h.DeleteBook, admin)

	authed.GET("/borrows", h.ListBorrows)
	authed.POST("/borrows/borrow", h.BorrowBook)
	authed.GET("/borrows/stats/summary", h.BorrowStats, admin)
	authed.GET("/borrows/overdue/list", h.OverdueBorrows, admin)
	authed.GET("/borrows/user/:user_id", h.UserBorrows)
	authed.GET("/borrows/:id", h.GetBorrow)
	authed.POST("/borrows/:id/return", h.ReturnBook)
	authed.POST("/borrows/:id/renew", h.RenewBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "library management API",
		"docs":    "/swagger/index.html",
	})
}
