package main

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/books_gateway/config"
	"github.com/mmdatafocus/books_gateway/erpapi"
	"github.com/mmdatafocus/books_gateway/reports"
)

const reportDateLayout = "2006-01-02"

// dayBookHandler streams the day book for a date range as XLSX. Both
// dates default to today.
func dayBookHandler(client *erpapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}

		now := time.Now().UTC()
		fromDate, toDate := now, now
		if raw := c.Query("from_date"); raw != "" {
			parsed, err := time.Parse(reportDateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "from_date must be YYYY-MM-DD"})
				return
			}
			fromDate = parsed
		}
		if raw := c.Query("to_date"); raw != "" {
			parsed, err := time.Parse(reportDateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to_date must be YYYY-MM-DD"})
				return
			}
			toDate = parsed
		}
		if toDate.Before(fromDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to_date must not be before from_date"})
			return
		}

		vouchers, err := client.ListVouchers(c.Request.Context(), fromDate, toDate)
		if err != nil {
			config.LogError(config.GetLogger(), "reportHandlers.go", "dayBookHandler", "ListVouchers", nil, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		if err := reports.WriteDayBook(&buf, vouchers); err != nil {
			config.LogError(config.GetLogger(), "reportHandlers.go", "dayBookHandler", "WriteDayBook", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}

		filename := "day-book-" + fromDate.Format(reportDateLayout) + "-" + toDate.Format(reportDateLayout) + ".xlsx"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
