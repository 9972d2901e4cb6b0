package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmdatafocus/books_gateway/config"
	"github.com/mmdatafocus/books_gateway/erpapi"
	"github.com/mmdatafocus/books_gateway/middlewares"
	"github.com/mmdatafocus/books_gateway/models"
	"github.com/mmdatafocus/books_gateway/utils"
	"github.com/sirupsen/logrus"
)

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func main() {
	cfg := config.GetConfig()
	port := cfg.ListenPort()
	logger := config.GetLogger()

	// Shutdown coordination.
	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// The upstream ERP client is required for everything except health
	// checks; if it cannot be built we gate app endpoints on 503 instead
	// of refusing to start.
	erpClient, err := erpapi.NewClient()
	if err != nil {
		logger.WithFields(logrus.Fields{
			"field": "erpapi",
		}).Warn("erp api client not ready: " + err.Error())
	}
	var draftStore *models.DraftStore
	if erpClient != nil {
		draftStore = models.NewDraftStore(erpClient)
	}

	r := gin.New()
	// Correlation IDs: generate once per request and attach to context.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		// Always allow the startup probe.
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		// Gate app endpoints on upstream readiness.
		if erpClient == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	// Production-safe CORS:
	// - In production, require explicit allowlist via CORS_ALLOWED_ORIGINS (comma-separated).
	// - In non-production, allow all (developer convenience).
	allowedOrigins := strings.TrimSpace(cfg.CorsOrigins)
	if cfg.IsProduction() {
		if allowedOrigins == "" {
			// Safer default: deny all if not configured in production.
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))
	r.Use(middlewares.SessionMiddleware())
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	// Selection dropdowns; failures degrade to an empty option list.
	r.GET("/lookups/ledgers", lookupLedgersHandler(erpClient))
	r.GET("/lookups/items", lookupItemsHandler(erpClient))

	// Voucher entry drafts (purchase/sales/payment/receipt).
	r.POST("/vouchers/drafts", createDraftHandler(draftStore))
	r.GET("/vouchers/drafts/:id", getDraftHandler(draftStore))
	r.PATCH("/vouchers/drafts/:id", editDraftHeaderHandler(draftStore))
	r.DELETE("/vouchers/drafts/:id", discardDraftHandler(draftStore))
	r.POST("/vouchers/drafts/:id/items", addItemRowHandler(draftStore))
	r.PATCH("/vouchers/drafts/:id/items/:index", editItemRowHandler(draftStore))
	r.DELETE("/vouchers/drafts/:id/items/:index", removeItemRowHandler(draftStore))
	r.POST("/vouchers/drafts/:id/entries", addEntryRowHandler(draftStore))
	r.PATCH("/vouchers/drafts/:id/entries/:index", editEntryRowHandler(draftStore))
	r.DELETE("/vouchers/drafts/:id/entries/:index", removeEntryRowHandler(draftStore))
	r.POST("/vouchers/drafts/:id/submit", submitDraftHandler(draftStore))

	// Master data pass-through.
	registerMasterRoutes(r, erpClient)

	// Reports.
	r.GET("/reports/day-book.xlsx", dayBookHandler(erpClient))

	r.NoRoute(customNotFoundHandler)

	// Start listening immediately (the startup probe is TCP based).
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect the optional lookup cache after the port is open.
	go config.ConnectRedisWithRetry(10)

	logger.WithFields(logrus.Fields{
		"info": "Listening",
	}).Info("voucher gateway listening on http://localhost:", port, "/")
	log.Println("Server started successfully")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Drain HTTP requests.
	shutdownTimeout := 30 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	// Close Redis (best-effort).
	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only log when there are errors
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
