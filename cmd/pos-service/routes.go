package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/pos-service/docs"
	"github.com/MikeMC777/pos-service/internal/config"
	"github.com/MikeMC777/pos-service/internal/httpx"
	"github.com/MikeMC777/pos-service/internal/product"
	"github.com/MikeMC777/pos-service/internal/report"
	"github.com/MikeMC777/pos-service/internal/transaction"
	"github.com/MikeMC777/pos-service/internal/user"
)

type services struct {
	loc          *time.Location
	products     *product.Service
	transactions *transaction.Service
	reports      *report.Service
	users        *user.Service
}

func newServices(cfg config.Config, products product.Repository, txs transaction.Repository, users user.Repository) *services {
	ps := product.NewService(products, product.NewMovementLog(), cfg.Location)
	ts := transaction.NewService(txs, cfg.Location)
	return &services{
		loc:          cfg.Location,
		products:     ps,
		transactions: ts,
		reports: report.NewService(ps, ts, report.Options{
			LowStockThreshold: cfg.LowStockThreshold,
			TopN:              cfg.ReportTopN,
			Location:          cfg.Location,
		}),
		users: user.NewService(users, user.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)),
	}
}

// seedStores builds the in-memory stores with the demo staff and, when
// enabled, the starter catalog.
func seedStores(cfg config.Config) (*product.MemRepo, *transaction.MemRepo, *user.MemRepo, error) {
	var catalog []product.Product
	if cfg.SeedProducts {
		catalog = product.DefaultCatalog()
	}
	users, err := user.NewMemRepo(user.DefaultStaff(cfg.AdminPassword, cfg.CashierPassword, cfg.KitchenPassword), 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("seed users: %w", err)
	}
	return product.NewMemRepo(catalog...), transaction.NewMemRepo(cfg.Location), users, nil
}

func newRouter(s *services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/auth/login", loginHandler(s.users))
	api.POST("/auth/logout", logoutHandler())

	anyone := httpx.RequireRole(s.users)
	admin := httpx.RequireRole(s.users, user.RoleAdmin)
	till := httpx.RequireRole(s.users, user.RoleAdmin, user.RoleCashier)
	kitchen := httpx.RequireRole(s.users, user.RoleAdmin, user.RoleKitchen)

	api.GET("/products", anyone, listProductsHandler(s.products))
	api.POST("/products", admin, createProductHandler(s.products))
	api.GET("/products/movements", admin, listMovementsHandler(s.products))
	api.POST("/products/movements", admin, recordMovementHandler(s.products))
	api.GET("/products/:id", anyone, getProductHandler(s.products))
	api.PUT("/products/:id", admin, updateProductHandler(s.products))
	api.DELETE("/products/:id", admin, deleteProductHandler(s.products))

	api.GET("/transactions", anyone, listTransactionsHandler(s.transactions, s.loc))
	api.POST("/transactions", till, createTransactionHandler(s.transactions))
	api.GET("/transactions/:id", anyone, getTransactionHandler(s.transactions))
	api.PUT("/transactions/:id", kitchen, updateKitchenStatusHandler(s.transactions))
	api.DELETE("/transactions/:id", till, voidTransactionHandler(s.transactions))

	api.GET("/dashboard", admin, dashboardHandler(s.reports))
	api.GET("/reports/sales", admin, salesReportHandler(s.reports))
	api.GET("/reports/inventory", admin, inventoryReportHandler(s.reports))
	return r
}
