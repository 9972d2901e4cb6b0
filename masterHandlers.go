package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/books_gateway/erpapi"
	"github.com/mmdatafocus/books_gateway/models"
	"github.com/mmdatafocus/books_gateway/utils"
)

// Master-data screens are CRUD glue: bind, validate locally, forward to
// the upstream API. Binding failures come back as the per-field map the
// form renders inline.

func registerMasterRoutes(r *gin.Engine, client *erpapi.Client) {
	r.GET("/account-categories", listHandler(client.ListAccountCategories))
	r.POST("/account-categories", createHandler(client.CreateAccountCategory, noExtraValidation[models.NewAccountCategory]))
	r.PUT("/account-categories/:id", updateHandler(client.UpdateAccountCategory, noExtraValidation[models.NewAccountCategory]))
	r.DELETE("/account-categories/:id", deleteHandler(client.DeleteAccountCategory))

	r.GET("/account-groups", listHandler(client.ListAccountGroups))
	r.POST("/account-groups", createHandler(client.CreateAccountGroup, noExtraValidation[models.NewAccountGroup]))
	r.PUT("/account-groups/:id", updateHandler(client.UpdateAccountGroup, noExtraValidation[models.NewAccountGroup]))
	r.DELETE("/account-groups/:id", deleteHandler(client.DeleteAccountGroup))

	r.GET("/account-masters", listHandler(client.ListAccountMasters))
	r.POST("/account-masters", createHandler(client.CreateAccountMaster, (*models.NewAccountMaster).Validate))
	r.PUT("/account-masters/:id", updateHandler(client.UpdateAccountMaster, (*models.NewAccountMaster).Validate))
	r.DELETE("/account-masters/:id", deleteHandler(client.DeleteAccountMaster))

	r.GET("/vat-masters", listHandler(client.ListVatMasters))
	r.POST("/vat-masters", createHandler(client.CreateVatMaster, (*models.NewVatMaster).Validate))
	r.PUT("/vat-masters/:id", updateHandler(client.UpdateVatMaster, (*models.NewVatMaster).Validate))
	r.DELETE("/vat-masters/:id", deleteHandler(client.DeleteVatMaster))

	r.GET("/customers", listHandler(client.ListCustomers))
	r.POST("/customers", createHandler(client.CreateCustomer, (*models.NewCustomer).Validate))
	r.PUT("/customers/:id", updateHandler(client.UpdateCustomer, (*models.NewCustomer).Validate))
	r.DELETE("/customers/:id", deleteHandler(client.DeleteCustomer))
}

func noExtraValidation[I any](*I) map[string]string { return nil }

func listHandler[T any](list func(ctx context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		results, err := list(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": results})
	}
}

func createHandler[I any, T any](create func(ctx context.Context, input *I) (*T, error), validate func(*I) map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input I
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		if fieldErrors := validate(&input); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
			return
		}
		result, err := create(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": result})
	}
}

func updateHandler[I any, T any](update func(ctx context.Context, id int, input *I) (*T, error), validate func(*I) map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		var input I
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		if fieldErrors := validate(&input); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
			return
		}
		result, err := update(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}

func deleteHandler(remove func(ctx context.Context, id int) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := remove(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
