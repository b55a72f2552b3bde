package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"flowspace-go/internal/config"
	"flowspace-go/internal/transport/httpserver/handler"
	authmw "flowspace-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)
		r.Post("/auth/logout", handlers.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/session", handlers.Session)

			r.Get("/reports/financials", handlers.Financials)
			r.Post("/reports/partner-split", handlers.PartnerSplit)

			r.Get("/invoices", handlers.ListInvoices)
			r.Post("/invoices", handlers.CreateInvoice)
			r.Get("/invoices/{id}", handlers.GetInvoice)
			r.Put("/invoices/{id}", handlers.UpdateInvoice)
			r.Post("/invoices/{id}/send", handlers.SendInvoice)
			r.Post("/invoices/{id}/pay", handlers.PayInvoice)
			r.Delete("/invoices/{id}", handlers.DeleteInvoice)

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Put("/expenses/{id}", handlers.UpdateExpense)
			r.Post("/expenses/{id}/toggle-status", handlers.ToggleExpenseStatus)
			r.Delete("/expenses/{id}", handlers.DeleteExpense)

			r.Get("/projects", handlers.ListProjects)
			r.Get("/projects/stats", handlers.ProjectStats)
			r.Post("/projects", handlers.CreateProject)
			r.Put("/projects/{id}", handlers.UpdateProject)
			r.Delete("/projects/{id}", handlers.DeleteProject)

			r.Get("/tasks", handlers.ListTasks)
			r.Post("/tasks", handlers.CreateTask)
			r.Put("/tasks/{id}", handlers.UpdateTask)
			r.Patch("/tasks/{id}/status", handlers.UpdateTaskStatus)
			r.Post("/tasks/{id}/checklist/{item_id}/toggle", handlers.ToggleChecklistItem)
			r.Post("/tasks/{id}/comments", handlers.AddTaskComment)
			r.Post("/tasks/{id}/send-to-editor", handlers.SendTaskToEditor)
			r.Post("/tasks/{id}/submit-review", handlers.SubmitTaskForReview)
			r.Delete("/tasks/{id}", handlers.DeleteTask)

			r.Get("/contacts", handlers.ListContacts)
			r.Post("/contacts", handlers.CreateContact)
			r.Put("/contacts/{id}", handlers.UpdateContact)
			r.Delete("/contacts/{id}", handlers.DeleteContact)

			r.Get("/opportunities", handlers.ListOpportunities)
			r.Post("/opportunities", handlers.CreateOpportunity)
			r.Patch("/opportunities/{id}/stage", handlers.MoveOpportunityStage)

			r.Get("/posts", handlers.ListPosts)
			r.Post("/posts", handlers.CreatePost)
			r.Delete("/posts/{id}", handlers.DeletePost)
			r.Post("/posts/{id}/like", handlers.TogglePostLike)
			r.Post("/posts/{id}/comments", handlers.AddPostComment)

			r.Get("/forms", handlers.ListForms)
			r.Post("/forms", handlers.CreateForm)
			r.Patch("/forms/{id}/active", handlers.SetFormActive)
			r.Post("/forms/{id}/submissions", handlers.RecordFormSubmission)
			r.Delete("/forms/{id}", handlers.DeleteForm)

			r.Get("/articles", handlers.ListArticles)
			r.Post("/articles", handlers.CreateArticle)
			r.Put("/articles/{id}", handlers.UpdateArticle)
			r.Delete("/articles/{id}", handlers.DeleteArticle)

			r.Get("/employees", handlers.ListEmployees)
			r.Get("/attendance", handlers.ListAttendance)
			r.Post("/attendance", handlers.MarkAttendance)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Post("/employees", handlers.CreateEmployee)
				r.Put("/employees/{id}", handlers.UpdateEmployeeProfile)
				r.Patch("/employees/{id}/role", handlers.UpdateEmployeeRole)
				r.Delete("/employees/{id}", handlers.DeleteEmployee)
			})

			r.Get("/settings/company", handlers.GetCompanySettings)
			r.Put("/settings/company", handlers.UpdateCompanySettings)
			r.Get("/settings/partner-division", handlers.GetPartnerDivision)
			r.Put("/settings/partner-division", handlers.SavePartnerDivision)
		})
	})

	return r
}
