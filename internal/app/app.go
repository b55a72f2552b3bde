package app

import (
	"net/http"

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

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

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

	handlers := handler.New(services, handler.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Auth.CookieSecure,
	}, log)

	log.Info("app: initializing router")
	sessionAuth := authmw.NewSessionAuth(authService, cfg.Auth.CookieName, log)
	router := httpserver.NewRouter(cfg, handlers, sessionAuth)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
