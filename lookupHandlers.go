package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/books_gateway/config"
	"github.com/mmdatafocus/books_gateway/erpapi"
)

// Lookup results feed selection dropdowns. They are cached in Redis for a
// short TTL and degrade to an empty option list when the upstream is
// unreachable — a failed lookup must never block voucher editing.

func lookupCacheTTL() time.Duration {
	return time.Duration(config.GetConfig().LookupCacheTTL) * time.Second
}

func lookupLedgersHandler(client *erpapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var cached []erpapi.LedgerOption
		if hit, err := config.GetRedisObject("Lookup:Ledgers", &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"data": cached})
			return
		}

		ledgers, err := client.FetchLedgers(c.Request.Context())
		if err != nil {
			config.LogError(logger, "lookupHandlers.go", "lookupLedgersHandler", "FetchLedgers", nil, err)
			c.JSON(http.StatusOK, gin.H{"data": []erpapi.LedgerOption{}})
			return
		}
		if err := config.SetRedisObject("Lookup:Ledgers", ledgers, lookupCacheTTL()); err != nil {
			config.LogError(logger, "lookupHandlers.go", "lookupLedgersHandler", "SetRedisObject", nil, err)
		}
		c.JSON(http.StatusOK, gin.H{"data": ledgers})
	}
}

func lookupItemsHandler(client *erpapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var cached []erpapi.ItemOption
		if hit, err := config.GetRedisObject("Lookup:Items", &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"data": cached})
			return
		}

		items, err := client.FetchItems(c.Request.Context())
		if err != nil {
			config.LogError(logger, "lookupHandlers.go", "lookupItemsHandler", "FetchItems", nil, err)
			c.JSON(http.StatusOK, gin.H{"data": []erpapi.ItemOption{}})
			return
		}
		if err := config.SetRedisObject("Lookup:Items", items, lookupCacheTTL()); err != nil {
			config.LogError(logger, "lookupHandlers.go", "lookupItemsHandler", "SetRedisObject", nil, err)
		}
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}
