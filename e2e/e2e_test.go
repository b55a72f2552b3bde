//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"flowspace-go/internal/config"
	"flowspace-go/internal/db"
	articlesdomain "flowspace-go/internal/domain/articles"
	authdomain "flowspace-go/internal/domain/auth"
	crmdomain "flowspace-go/internal/domain/crm"
	employeesdomain "flowspace-go/internal/domain/employees"
	expensesdomain "flowspace-go/internal/domain/expenses"
	formsdomain "flowspace-go/internal/domain/forms"
	invoicesdomain "flowspace-go/internal/domain/invoices"
	projectsdomain "flowspace-go/internal/domain/projects"
	reportdomain "flowspace-go/internal/domain/report"
	settingsdomain "flowspace-go/internal/domain/settings"
	tasksdomain "flowspace-go/internal/domain/tasks"
	teamdomain "flowspace-go/internal/domain/team"
	articlesrepo "flowspace-go/internal/repository/postgres/articles"
	authrepo "flowspace-go/internal/repository/postgres/auth"
	crmrepo "flowspace-go/internal/repository/postgres/crm"
	employeesrepo "flowspace-go/internal/repository/postgres/employees"
	expensesrepo "flowspace-go/internal/repository/postgres/expenses"
	formsrepo "flowspace-go/internal/repository/postgres/forms"
	invoicesrepo "flowspace-go/internal/repository/postgres/invoices"
	projectsrepo "flowspace-go/internal/repository/postgres/projects"
	reportrepo "flowspace-go/internal/repository/postgres/report"
	settingsrepo "flowspace-go/internal/repository/postgres/settings"
	tasksrepo "flowspace-go/internal/repository/postgres/tasks"
	teamrepo "flowspace-go/internal/repository/postgres/team"
	"flowspace-go/internal/transport/httpserver"
	"flowspace-go/internal/transport/httpserver/handler"
	authmw "flowspace-go/internal/transport/httpserver/middleware"
	"flowspace-go/pkg/logger"
)

const cookieName = "flowspace_session"

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	cfg := config.Config{
		DB: config.DBConfig{DSN: dsn},
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-secret",
			TokenTTL:   time.Hour,
			CookieName: cookieName,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	log := logger.New(io.Discard, slog.LevelError, "text")
	authService := authdomain.NewService(authrepo.NewPostgres(dbConn), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	services := handler.Services{
		Auth:      authService,
		Reports:   reportdomain.NewService(reportrepo.NewPostgres(dbConn)),
		Invoices:  invoicesdomain.NewService(invoicesrepo.NewPostgres(dbConn)),
		Expenses:  expensesdomain.NewService(expensesrepo.NewPostgres(dbConn)),
		Projects:  projectsdomain.NewService(projectsrepo.NewPostgres(dbConn)),
		Tasks:     tasksdomain.NewService(tasksrepo.NewPostgres(dbConn)),
		CRM:       crmdomain.NewService(crmrepo.NewPostgres(dbConn)),
		Team:      teamdomain.NewService(teamrepo.NewPostgres(dbConn)),
		Forms:     formsdomain.NewService(formsrepo.NewPostgres(dbConn)),
		Articles:  articlesdomain.NewService(articlesrepo.NewPostgres(dbConn)),
		Employees: employeesdomain.NewService(employeesrepo.NewPostgres(dbConn)),
		Settings:  settingsdomain.NewService(settingsrepo.NewPostgres(dbConn)),
	}

	handlers := handler.New(services, handler.CookieConfig{Name: cookieName}, log)
	sessionAuth := authmw.NewSessionAuth(authService, cookieName, log)
	router := httpserver.NewRouter(cfg, handlers, sessionAuth)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE articles, attendance_records, partner_divisions, company_settings, forms, posts, opportunities, contacts, expenses, invoice_items, invoices, tasks, projects, users, tenants RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type sessionResponse struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// register creates a tenant and returns the session token from the
// Set-Cookie header.
func register(t *testing.T, client *http.Client, baseURL, company, email string) (sessionResponse, string) {
	t.Helper()

	payload := map[string]string{
		"company_name": company,
		"name":         "Owner",
		"email":        email,
		"password":     "correct-horse",
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/auth/register", bytes.NewReader(mustJSON(t, payload)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.StatusCode, string(body))
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == cookieName && cookie.Value != "" {
			return session, cookie.Value
		}
	}
	t.Fatal("register: no session cookie set")
	return session, ""
}

func mustJSON(t *testing.T, payload interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestE2EHealthAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/auth/session", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "invalid_token" {
		t.Fatalf("expected invalid_token, got %q", errResp.Error.Code)
	}

	session, token := register(t, client, env.server.URL, "Acme Photo", "owner@acme.test")
	if session.User.Role != "admin" {
		t.Fatalf("expected admin role for tenant owner, got %q", session.User.Role)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/auth/session", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EInvoiceLifecycleAndReport(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	_, token := register(t, client, env.server.URL, "Studio One", "owner@studio.test")

	invoicePayload := map[string]interface{}{
		"client_name": "Westside League",
		"currency":    "USD",
		"issue_date":  "2026-03-01",
		"due_date":    "2026-03-15",
		"items": []map[string]interface{}{
			{"description": "Team photos", "quantity": 2, "price": "150.00"},
		},
	}
	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/invoices", token, invoicePayload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create invoice: expected 201, got %d: %s", resp.StatusCode, string(body))
	}

	var invoice struct {
		ID     string `json:"id"`
		Amount string `json:"amount"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &invoice); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	if invoice.Status != "Draft" {
		t.Fatalf("expected Draft, got %q", invoice.Status)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/invoices/"+invoice.ID+"/send", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send invoice: expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/invoices/"+invoice.ID+"/pay", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pay invoice: expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	expensePayload := map[string]interface{}{
		"description": "Lens rental",
		"amount":      "80.00",
		"category":    "Equipment",
		"date":        "2026-03-05",
	}
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/expenses", token, expensePayload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expense: expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var expense struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &expense); err != nil {
		t.Fatalf("decode expense: %v", err)
	}
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/expenses/"+expense.ID+"/toggle-status", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle expense: expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet,
		env.server.URL+"/api/reports/financials?range=custom&start=2026-03-01&end=2026-03-31", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("financials: expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	var report struct {
		Summary struct {
			TotalIncome  decimal.Decimal `json:"total_income"`
			TotalExpense decimal.Decimal `json:"total_expense"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !report.Summary.TotalIncome.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected income 300, got %s", report.Summary.TotalIncome)
	}
	if !report.Summary.TotalExpense.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected expenses 80, got %s", report.Summary.TotalExpense)
	}
}

func TestE2ETenantIsolation(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	_, tokenA := register(t, client, env.server.URL, "Tenant A", "a@tenant.test")
	_, tokenB := register(t, client, env.server.URL, "Tenant B", "b@tenant.test")

	contactPayload := map[string]interface{}{"name": "League Director"}
	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/contacts", tokenA, contactPayload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create contact: expected 201, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/contacts", tokenB, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list contacts: expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var contacts []map[string]interface{}
	if err := json.Unmarshal(body, &contacts); err != nil {
		t.Fatalf("decode contacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("tenant B sees %d contacts from tenant A", len(contacts))
	}
}
