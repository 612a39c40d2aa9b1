package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessBody is the plain-text response of the root route.
const LivenessBody = "Bot is running!"

// NewRouter builds the liveness router.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessBody)
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// NewServer wraps the router in an http.Server bound to port.
func NewServer(port int, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      NewRouter(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
