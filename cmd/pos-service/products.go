package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/httpx"
	"github.com/MikeMC777/pos-service/internal/product"
)

type movementsResponse struct {
	Success   bool               `json:"success"`
	Movements []product.Movement `json:"movements"`
}

type movementResponse struct {
	Success  bool             `json:"success"`
	Movement product.Movement `json:"movement"`
	Product  product.Product  `json:"product"`
}

func productID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid product id %q", apperr.ErrValidation, c.Param("id"))
	}
	return id, nil
}

// listProductsHandler godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} product.ListResponse
// @Failure      401 {object} httpx.ErrorBody
// @Router       /api/products [get]
func listProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product.ListResponse{Success: true, Products: items})
	}
}

// getProductHandler godoc
// @Summary      Get product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  product.Response
// @Failure      400  {object}  httpx.ErrorBody
// @Failure      404  {object}  httpx.ErrorBody
// @Router       /api/products/{id} [get]
func getProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := productID(c)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product.Response{Success: true, Product: *p})
	}
}

// createProductHandler godoc
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      product.CreateProductRequest  true  "New product"
// @Success      201   {object}  product.Response
// @Failure      400   {object}  httpx.ErrorBody
// @Failure      403   {object}  httpx.ErrorBody
// @Router       /api/products [post]
func createProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, product.Response{Success: true, Product: *p, Message: "Product created successfully"})
	}
}

// updateProductHandler godoc
// @Summary      Update product (partial)
// @Description  Only the fields present in the body are changed. A stock change is logged as a movement.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                           true  "Product ID"
// @Param        body  body      product.UpdateProductRequest  true  "Fields to change"
// @Success      200   {object}  product.Response
// @Failure      400   {object}  httpx.ErrorBody
// @Failure      404   {object}  httpx.ErrorBody
// @Router       /api/products/{id} [put]
func updateProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := productID(c)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		var in product.UpdateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		if in.Empty() {
			httpx.BadRequest(c, "no fields to update")
			return
		}
		p, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product.Response{Success: true, Product: *p, Message: "Product updated successfully"})
	}
}

// deleteProductHandler godoc
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  httpx.MessageBody
// @Failure      404  {object}  httpx.ErrorBody
// @Router       /api/products/{id} [delete]
func deleteProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := productID(c)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Product deleted successfully")
	}
}

// listMovementsHandler godoc
// @Summary      List stock movements
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} movementsResponse
// @Router       /api/products/movements [get]
func listMovementsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, movementsResponse{Success: true, Movements: svc.Movements(c.Request.Context())})
	}
}

// recordMovementHandler godoc
// @Summary      Record a stock movement
// @Description  Adjusts stock by the quantity (in adds, out subtracts) and appends to the movement log.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      product.MovementRequest  true  "Movement"
// @Success      201   {object}  movementResponse
// @Failure      400   {object}  httpx.ErrorBody
// @Failure      404   {object}  httpx.ErrorBody
// @Router       /api/products/movements [post]
func recordMovementHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.MovementRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		m, p, err := svc.RecordMovement(c.Request.Context(), in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, movementResponse{Success: true, Movement: *m, Product: *p})
	}
}
