package handler

import (
	"net/http"

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
	"flowspace-go/internal/transport/httpserver/middleware"
	"flowspace-go/pkg/logger"
)

type Services struct {
	Auth      *authdomain.Service
	Reports   *reportdomain.Service
	Invoices  *invoicesdomain.Service
	Expenses  *expensesdomain.Service
	Projects  *projectsdomain.Service
	Tasks     *tasksdomain.Service
	CRM       *crmdomain.Service
	Team      *teamdomain.Service
	Forms     *formsdomain.Service
	Articles  *articlesdomain.Service
	Employees *employeesdomain.Service
	Settings  *settingsdomain.Service
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handlers struct {
	services Services
	cookie   CookieConfig
	log      logger.Logger
}

func New(services Services, cookie CookieConfig, log logger.Logger) *Handlers {
	return &Handlers{services: services, cookie: cookie, log: log}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// session pulls the verified session out of the request context. The auth
// middleware guarantees it is present on protected routes.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (authdomain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return authdomain.Session{}, false
	}
	return session, true
}
