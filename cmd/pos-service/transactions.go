package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
	"github.com/MikeMC777/pos-service/internal/httpx"
	"github.com/MikeMC777/pos-service/internal/transaction"
)

// listTransactionsHandler godoc
// @Summary      List transactions
// @Description  Most recent first. Dates are compared as calendar days, both bounds inclusive.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query     string  false  "YYYY-MM-DD"
// @Param        endDate    query     string  false  "YYYY-MM-DD"
// @Param        status     query     string  false  "preparing | completed"
// @Success      200        {object}  transaction.ListResponse
// @Failure      400        {object}  httpx.ErrorBody
// @Router       /api/transactions [get]
func listTransactionsHandler(svc *transaction.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		rng, err := calendar.ParseRange(c.Query("startDate"), c.Query("endDate"), loc)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		q := transaction.Query{Range: rng}
		if s := c.Query("status"); s != "" {
			q.Status = transaction.KitchenStatus(s)
			if !q.Status.Valid() {
				httpx.Error(c, fmt.Errorf("%w: status must be preparing or completed", apperr.ErrValidation))
				return
			}
		}
		items, err := svc.List(c.Request.Context(), q)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction.ListResponse{Success: true, Transactions: items})
	}
}

// getTransactionHandler godoc
// @Summary      Get transaction by id or receipt number
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction ID or REC-NNNNNNNN"
// @Success      200  {object}  transaction.Response
// @Failure      404  {object}  httpx.ErrorBody
// @Router       /api/transactions/{id} [get]
func getTransactionHandler(svc *transaction.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction.Response{Success: true, Transaction: *t})
	}
}

// createTransactionHandler godoc
// @Summary      Checkout
// @Description  Records a sale. The total is recomputed from the items and must match the submitted one.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transaction.CreateTransactionRequest  true  "Cart"
// @Success      201   {object}  transaction.Response
// @Failure      400   {object}  httpx.ErrorBody
// @Failure      403   {object}  httpx.ErrorBody
// @Router       /api/transactions [post]
func createTransactionHandler(svc *transaction.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in transaction.CreateTransactionRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		t, err := svc.Create(c.Request.Context(), in, httpx.UserID(c))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, transaction.Response{Success: true, Transaction: *t, Message: "Transaction completed successfully"})
	}
}

// updateKitchenStatusHandler godoc
// @Summary      Set kitchen status
// @Description  Unknown status values leave the transaction unchanged and still succeed.
// @Tags         kitchen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                           true  "Transaction ID or receipt number"
// @Param        body  body      transaction.UpdateStatusRequest  true  "New status"
// @Success      200   {object}  transaction.Response
// @Failure      404   {object}  httpx.ErrorBody
// @Router       /api/transactions/{id} [put]
func updateKitchenStatusHandler(svc *transaction.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in transaction.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		t, err := svc.UpdateKitchenStatus(c.Request.Context(), c.Param("id"), in.KitchenStatus)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction.Response{Success: true, Transaction: *t})
	}
}

// voidTransactionHandler godoc
// @Summary      Void transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction ID or receipt number"
// @Success      200  {object}  httpx.MessageBody
// @Failure      404  {object}  httpx.ErrorBody
// @Router       /api/transactions/{id} [delete]
func voidTransactionHandler(svc *transaction.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Void(c.Request.Context(), c.Param("id")); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Transaction voided successfully")
	}
}
