package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/books_gateway/models"
	"github.com/mmdatafocus/books_gateway/utils"
)

// draftView is the display edge: totals are rendered to 2 decimal places
// here and nowhere else.
func draftView(draft *models.VoucherDraft) gin.H {
	totals := draft.Totals()
	debit, credit := models.EntryTotals(draft.Entries)
	return gin.H{
		"draft": draft,
		"totals": gin.H{
			"base":         totals.Base.StringFixed(2),
			"cgst":         totals.Tax.Cgst.StringFixed(2),
			"sgst":         totals.Tax.Sgst.StringFixed(2),
			"igst":         totals.Tax.Igst.StringFixed(2),
			"tax":          totals.Tax.Total().StringFixed(2),
			"grand_total":  totals.GrandTotal.StringFixed(2),
			"total_debit":  debit.StringFixed(2),
			"total_credit": credit.StringFixed(2),
		},
		"balanced": models.IsBalanced(draft.Entries),
	}
}

func requireSession(c *gin.Context) bool {
	if _, ok := utils.GetUsernameFromContext(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	return true
}

func draftErrorStatus(err error) int {
	switch {
	case errors.Is(err, utils.ErrorDraftNotFound), errors.Is(err, models.ErrorRowNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

type createDraftRequest struct {
	Type models.VoucherType `json:"type" binding:"required"`
}

func createDraftHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var req createDraftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		draft, err := store.CreateDraft(c.Request.Context(), req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, draftView(draft))
	}
}

func getDraftHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		draft, err := store.GetDraft(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

type editDraftHeaderRequest struct {
	VoucherNumber *string `json:"voucher_number"`
	Date          *string `json:"date"`
	Narration     *string `json:"narration"`
}

func editDraftHeaderHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var req editDraftHeaderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			if req.VoucherNumber != nil {
				draft.VoucherNumber = *req.VoucherNumber
			}
			if req.Date != nil {
				parsed, err := time.Parse("2006-01-02", *req.Date)
				if err != nil {
					return errors.New("date must be YYYY-MM-DD")
				}
				draft.Date = parsed
			}
			if req.Narration != nil {
				draft.Narration = *req.Narration
			}
			return nil
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func discardDraftHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		if err := store.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func rowIndex(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}

type editRowRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func addItemRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		// Body is optional: absent defaults mean a blank row.
		var defaults models.LineItem
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&defaults); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
				return
			}
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.AddItemRow(defaults)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func editItemRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		index, err := rowIndex(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
			return
		}
		var req editRowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.EditItemField(index, req.Field, req.Value)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func removeItemRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		index, err := rowIndex(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
			return
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.RemoveItemRow(index)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func addEntryRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var defaults models.LedgerEntry
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&defaults); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
				return
			}
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.AddEntryRow(defaults)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func editEntryRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		index, err := rowIndex(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
			return
		}
		var req editRowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.EditEntryField(index, req.Field, req.Value)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func removeEntryRowHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		index, err := rowIndex(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
			return
		}
		draft, err := store.MutateDraft(c.Request.Context(), c.Param("id"), func(draft *models.VoucherDraft) error {
			return draft.RemoveEntryRow(index)
		})
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftView(draft))
	}
}

func submitDraftHandler(store *models.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		result, err := store.SubmitDraft(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrorDraftInvalid) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":  err.Error(),
					"errors": result.Draft.FieldErrors,
				})
				return
			}
			if errors.Is(err, utils.ErrorDraftNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if errors.Is(err, models.ErrorSubmitInFlight) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			// Upstream failure: the draft is retained for correction and
			// resubmit; the message is surfaced as a transient notification.
			status := http.StatusBadGateway
			body := gin.H{"error": err.Error()}
			if result != nil {
				body["draft"] = result.Draft
			}
			c.JSON(status, body)
			return
		}

		response := gin.H{
			"draft":    result.Draft,
			"balanced": result.Balanced,
		}
		if result.BalanceWarning != "" {
			response["balance_warning"] = result.BalanceWarning
		}
		c.JSON(http.StatusOK, response)
	}
}
