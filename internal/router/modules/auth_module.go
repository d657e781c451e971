package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/container"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
)

// AuthModule exposes the public account endpoints.
// Public: POST /api/auth/signup, POST /api/auth/login

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP())  // 5 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP()) // 10 req/min per IP

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
