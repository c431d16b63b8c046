package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/pos-service/internal/config"
	"github.com/MikeMC777/pos-service/internal/product"
	"github.com/MikeMC777/pos-service/internal/report"
	"github.com/MikeMC777/pos-service/internal/transaction"
	"github.com/MikeMC777/pos-service/internal/user"
)

//
// ===== STUBS =====
//

// brokenTxRepo fails every call, to check that storage failures surface as 500.
type brokenTxRepo struct{}

var errDisk = fmt.Errorf("disk unavailable")

func (brokenTxRepo) Create(context.Context, *transaction.Transaction) error { return errDisk }
func (brokenTxRepo) GetByID(context.Context, string) (*transaction.Transaction, error) {
	return nil, errDisk
}
func (brokenTxRepo) List(context.Context, transaction.Query) ([]transaction.Transaction, error) {
	return nil, errDisk
}
func (brokenTxRepo) UpdateKitchenStatus(context.Context, string, transaction.KitchenStatus) (*transaction.Transaction, error) {
	return nil, errDisk
}
func (brokenTxRepo) Delete(context.Context, string) error { return errDisk }

//
// ===== TEST SERVER =====
//

func testConfig() config.Config {
	return config.Config{
		Location:          time.UTC,
		LowStockThreshold: 20,
		ReportTopN:        5,
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
	}
}

func newTestServer(t *testing.T, txs transaction.Repository) *gin.Engine {
	t.Helper()
	users, err := user.NewMemRepo(user.DefaultStaff("admin123", "cashier123", "kitchen123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if txs == nil {
		txs = transaction.NewMemRepo(time.UTC)
	}
	s := newServices(testConfig(), product.NewMemRepo(product.DefaultCatalog()...), txs, users)
	return newRouter(s)
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, role string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":"%s123","role":%q}`, role, role, role)
	w := call(r, http.MethodPost, "/api/auth/login", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status=%d body=%s", role, w.Code, w.Body.String())
	}
	var got user.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got.Success || got.Token == "" || string(got.User.Role) != role {
		t.Fatalf("unexpected login response: %+v", got)
	}
	return got.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
}

func checkout(t *testing.T, r http.Handler, token, body string) transaction.Transaction {
	t.Helper()
	w := call(r, http.MethodPost, "/api/transactions", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: status=%d body=%s", w.Code, w.Body.String())
	}
	var got transaction.Response
	decode(t, w, &got)
	return got.Transaction
}

//
// ===== AUTH =====
//

func TestLogin_RoleMustMatch(t *testing.T) {
	r := newTestServer(t, nil)
	login(t, r, "admin")

	w := call(r, http.MethodPost, "/api/auth/login", "", `{"username":"cashier","password":"cashier123","role":"admin"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	w = call(r, http.MethodPost, "/api/auth/login", "", `{"username":"cashier"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w = call(r, http.MethodPost, "/api/auth/login", "", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on malformed body, got %d", w.Code)
	}
	w = call(r, http.MethodPost, "/api/auth/logout", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout status=%d", w.Code)
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	r := newTestServer(t, nil)

	for _, path := range []string{"/api/products", "/api/transactions", "/api/dashboard"} {
		w := call(r, http.MethodGet, path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: expected 401, got %d", path, w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		decode(t, w, &body)
		if body.Success || body.Error == "" {
			t.Fatalf("%s: unexpected error envelope %+v", path, body)
		}
	}

	// signed with the right key but for an account that does not exist
	ghost, err := user.NewTokenIssuer([]byte(testConfig().JWTSecret), time.Hour).Issue(&user.User{ID: 42, Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if w := call(r, http.MethodGet, "/api/dashboard", ghost, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown account: expected 401, got %d", w.Code)
	}

	w := call(r, http.MethodGet, "/healthz", "", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthz: status=%d body=%s", w.Code, w.Body.String())
	}
}

//
// ===== PRODUCTS =====
//

func TestProducts_CRUD(t *testing.T) {
	r := newTestServer(t, nil)
	admin := login(t, r, "admin")
	cashier := login(t, r, "cashier")

	// any role can read the catalog
	{
		w := call(r, http.MethodGet, "/api/products", cashier, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got product.ListResponse
		decode(t, w, &got)
		if len(got.Products) != 8 {
			t.Fatalf("len=%d, expected 8", len(got.Products))
		}
	}

	// only admin writes
	create := `{"name":"Cold Brew","price":"4.50","stock":0,"category":"Drinks"}`
	if w := call(r, http.MethodPost, "/api/products", cashier, create); w.Code != http.StatusForbidden {
		t.Fatalf("cashier create: expected 403, got %d", w.Code)
	}
	var created product.Response
	{
		w := call(r, http.MethodPost, "/api/products", admin, create)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		decode(t, w, &created)
		if created.Product.ID != 9 || created.Product.SKU != "PRD-009" || created.Product.Stock != 0 {
			t.Fatalf("unexpected product: %+v", created.Product)
		}
	}

	// missing category
	if w := call(r, http.MethodPost, "/api/products", admin, `{"name":"X","price":"1","stock":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// partial update keeps the other fields
	{
		w := call(r, http.MethodPut, "/api/products/9", admin, `{"stock":12}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got product.Response
		decode(t, w, &got)
		if got.Product.Stock != 12 || got.Product.Name != "Cold Brew" || got.Product.Price.String() != "4.5" {
			t.Fatalf("partial update not applied: %+v", got.Product)
		}
	}
	if w := call(r, http.MethodPut, "/api/products/9", admin, `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty update: expected 400, got %d", w.Code)
	}
	if w := call(r, http.MethodPut, "/api/products/9", admin, `{"stock":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("negative stock: expected 400, got %d", w.Code)
	}

	if w := call(r, http.MethodGet, "/api/products/abc", cashier, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: expected 400, got %d", w.Code)
	}
	if w := call(r, http.MethodGet, "/api/products/99", cashier, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	if w := call(r, http.MethodDelete, "/api/products/9", admin, ""); w.Code != http.StatusOK {
		t.Fatalf("delete: status=%d body=%s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodDelete, "/api/products/9", admin, ""); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestMovements_RecordAndList(t *testing.T) {
	r := newTestServer(t, nil)
	admin := login(t, r, "admin")

	w := call(r, http.MethodPost, "/api/products/movements", admin, `{"productId":5,"type":"out","quantity":2,"reason":"breakage"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Movement product.Movement `json:"movement"`
		Product  product.Product  `json:"product"`
	}
	decode(t, w, &got)
	if got.Product.Stock != 10 || got.Movement.Type != product.MovementOut || got.Movement.ProductName != "Product E" {
		t.Fatalf("unexpected movement: %+v", got)
	}

	w = call(r, http.MethodPost, "/api/products/movements", admin, `{"productId":5,"type":"out","quantity":11,"reason":"breakage"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overdraw: expected 400, got %d", w.Code)
	}

	w = call(r, http.MethodGet, "/api/products/movements", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var list struct {
		Movements []product.Movement `json:"movements"`
	}
	decode(t, w, &list)
	if len(list.Movements) != 1 {
		t.Fatalf("len=%d, expected 1", len(list.Movements))
	}
}

//
// ===== TRANSACTIONS & KITCHEN =====
//

const cart = `{"customerName":"Walk-in","items":[{"id":1,"name":"Product A","price":"22.75","quantity":2}],"total":"45.50"}`

func TestCheckout_AndKitchenFlow(t *testing.T) {
	r := newTestServer(t, nil)
	cashier := login(t, r, "cashier")
	kitchen := login(t, r, "kitchen")

	tx := checkout(t, r, cashier, cart)
	if !strings.HasPrefix(tx.ReceiptNumber, "REC-") || len(tx.ReceiptNumber) != 12 {
		t.Fatalf("unexpected receipt %q", tx.ReceiptNumber)
	}
	if tx.KitchenStatus != transaction.StatusPreparing || tx.Total.String() != "45.5" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.UserID == nil || *tx.UserID != 2 {
		t.Fatalf("userId should be the cashier, got %v", tx.UserID)
	}

	// kitchen cannot take payments
	if w := call(r, http.MethodPost, "/api/transactions", kitchen, cart); w.Code != http.StatusForbidden {
		t.Fatalf("kitchen checkout: expected 403, got %d", w.Code)
	}

	// the kitchen board polls preparing orders
	{
		w := call(r, http.MethodGet, "/api/transactions?status=preparing", kitchen, "")
		var got transaction.ListResponse
		decode(t, w, &got)
		if w.Code != http.StatusOK || len(got.Transactions) != 1 {
			t.Fatalf("status=%d len=%d", w.Code, len(got.Transactions))
		}
	}

	// complete by receipt number, then an unknown status is a no-op
	{
		w := call(r, http.MethodPut, "/api/transactions/"+tx.ReceiptNumber, kitchen, `{"kitchenStatus":"completed"}`)
		var got transaction.Response
		decode(t, w, &got)
		if w.Code != http.StatusOK || got.Transaction.KitchenStatus != transaction.StatusCompleted {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		w = call(r, http.MethodPut, "/api/transactions/"+tx.ID, kitchen, `{"kitchenStatus":"burnt"}`)
		decode(t, w, &got)
		if w.Code != http.StatusOK || got.Transaction.KitchenStatus != transaction.StatusCompleted {
			t.Fatalf("unknown status should be ignored: status=%d body=%s", w.Code, w.Body.String())
		}
	}
	if w := call(r, http.MethodPut, "/api/transactions/nope", kitchen, `{"kitchenStatus":"completed"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// void
	if w := call(r, http.MethodDelete, "/api/transactions/"+tx.ID, kitchen, ""); w.Code != http.StatusForbidden {
		t.Fatalf("kitchen void: expected 403, got %d", w.Code)
	}
	if w := call(r, http.MethodDelete, "/api/transactions/"+tx.ID, cashier, ""); w.Code != http.StatusOK {
		t.Fatalf("void: status=%d body=%s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodGet, "/api/transactions/"+tx.ReceiptNumber, cashier, ""); w.Code != http.StatusNotFound {
		t.Fatalf("voided transaction still readable: %d", w.Code)
	}
}

func TestCheckout_Invalid(t *testing.T) {
	r := newTestServer(t, nil)
	cashier := login(t, r, "cashier")

	bodies := map[string]string{
		"total mismatch": `{"customerName":"A","items":[{"id":1,"name":"Product A","price":"22.75","quantity":2}],"total":"40.00"}`,
		"no items":       `{"customerName":"A","items":[],"total":"0"}`,
		"no customer":    `{"customerName":" ","items":[{"id":1,"name":"Product A","price":"1","quantity":1}],"total":"1"}`,
		"no total":       `{"customerName":"A","items":[{"id":1,"name":"Product A","price":"1","quantity":1}]}`,
		"zero quantity":  `{"customerName":"A","items":[{"id":1,"name":"Product A","price":"1","quantity":0}],"total":"0"}`,
	}
	for name, body := range bodies {
		if w := call(r, http.MethodPost, "/api/transactions", cashier, body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", name, w.Code, w.Body.String())
		}
	}
}

func TestListTransactions_Filters(t *testing.T) {
	r := newTestServer(t, nil)
	cashier := login(t, r, "cashier")
	first := checkout(t, r, cashier, cart)
	second := checkout(t, r, cashier, cart)

	today := time.Now().UTC().Format("2006-01-02")
	w := call(r, http.MethodGet, "/api/transactions?startDate="+today+"&endDate="+today, cashier, "")
	var got transaction.ListResponse
	decode(t, w, &got)
	if w.Code != http.StatusOK || len(got.Transactions) != 2 {
		t.Fatalf("status=%d len=%d", w.Code, len(got.Transactions))
	}
	if got.Transactions[0].ID != second.ID || got.Transactions[1].ID != first.ID {
		t.Fatalf("expected most recent first")
	}

	w = call(r, http.MethodGet, "/api/transactions?startDate=2000-01-01&endDate=2000-01-31", cashier, "")
	decode(t, w, &got)
	if len(got.Transactions) != 0 {
		t.Fatalf("expected empty range, got %d", len(got.Transactions))
	}

	for _, q := range []string{"?startDate=yesterday", "?startDate=2026-02-01&endDate=2026-01-01", "?status=cooking"} {
		if w := call(r, http.MethodGet, "/api/transactions"+q, cashier, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

//
// ===== REPORTS =====
//

func TestReports(t *testing.T) {
	r := newTestServer(t, nil)
	admin := login(t, r, "admin")
	cashier := login(t, r, "cashier")
	checkout(t, r, cashier, cart)
	checkout(t, r, cashier, `{"customerName":"B","items":[{"id":2,"name":"Product B","price":"25.00","quantity":1}],"total":"25.00"}`)

	if w := call(r, http.MethodGet, "/api/dashboard", cashier, ""); w.Code != http.StatusForbidden {
		t.Fatalf("cashier dashboard: expected 403, got %d", w.Code)
	}

	{
		w := call(r, http.MethodGet, "/api/dashboard", admin, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got struct {
			Success            bool                      `json:"success"`
			Stats              report.DashboardStats     `json:"stats"`
			RecentTransactions []transaction.Transaction `json:"recentTransactions"`
		}
		decode(t, w, &got)
		if got.Stats.Today.Amount.String() != "70.5" || got.Stats.Today.Transactions != 2 {
			t.Fatalf("unexpected today stats: %+v", got.Stats.Today)
		}
		if len(got.RecentTransactions) != 2 {
			t.Fatalf("recent len=%d", len(got.RecentTransactions))
		}
	}

	{
		w := call(r, http.MethodGet, "/api/reports/sales?period=week", admin, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got salesResponse
		decode(t, w, &got)
		rep := got.SalesReport
		if rep.TotalTransactions != 2 || len(rep.TopProducts) != 2 || rep.TopProducts[0].ProductID != 1 {
			t.Fatalf("unexpected report: %+v", rep)
		}
	}
	if w := call(r, http.MethodGet, "/api/reports/sales?period=decade", admin, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad period: expected 400, got %d", w.Code)
	}

	{
		w := call(r, http.MethodGet, "/api/reports/inventory", admin, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got inventoryResponse
		decode(t, w, &got)
		low := got.InventoryAlerts.LowStock
		if len(low) != 2 || low[0].Name != "Product C" || low[1].Name != "Product E" {
			t.Fatalf("unexpected low stock: %+v", low)
		}
		if len(got.InventoryAlerts.FastMoving) != 2 || got.InventoryAlerts.FastMoving[0].Category != "Electronics" {
			t.Fatalf("unexpected fast moving: %+v", got.InventoryAlerts.FastMoving)
		}
	}
}

func TestReports_StorageFailureIs500(t *testing.T) {
	r := newTestServer(t, brokenTxRepo{})
	admin := login(t, r, "admin")

	w := call(r, http.MethodGet, "/api/dashboard", admin, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), errDisk.Error()) {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
}

func TestDialAddr(t *testing.T) {
	if got := dialAddr(":50051"); got != "localhost:50051" {
		t.Fatalf("got %q", got)
	}
	if got := dialAddr("10.0.0.1:9000"); got != "10.0.0.1:9000" {
		t.Fatalf("got %q", got)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
