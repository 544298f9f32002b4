package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/AmitChauhan63390/auth-app/internal/http/handlers"
	"github.com/AmitChauhan63390/auth-app/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/signup", ah.Signup)
	api.POST("/login", ah.Login)

	v := api.Group("/").Use(jwtmw.WithJWT())
	v.GET("/me", ah.Me)

	return r
}
