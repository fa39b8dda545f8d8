package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/middleware"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Candidate   CandidateHandler
	Opportunity OpportunityHandler
	Job         JobHandler
	Attendance  AttendanceHandler
	Invoice     InvoiceHandler
	Payment     PaymentHandler
	Escalation  EscalationHandler
	Document    DocumentHandler
	Certificate CertificateHandler
	Activity    ActivityHandler
	Taxonomy    TaxonomyHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "consultefy-hiring"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", h.Candidate.List)
				r.Post("/", h.Candidate.Create)
				r.Post("/match", h.Candidate.Match)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Candidate.GetByID)
					r.Put("/", h.Candidate.Update)
					r.Delete("/", h.Candidate.Delete)
					r.Post("/resume", h.Candidate.UploadResume)
					r.Get("/certificates", h.Certificate.ListByCandidate)
					r.Post("/certificates", h.Certificate.AssignToCandidate)
					r.Get("/opportunities", h.Opportunity.ListOpportunitiesForCandidate)
				})
			})

			r.Route("/opportunities", func(r chi.Router) {
				r.Get("/", h.Opportunity.List)
				r.Post("/", h.Opportunity.Create)
				r.Put("/candidates/{linkId}", h.Opportunity.UpdateLink)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Opportunity.GetByID)
					r.Put("/", h.Opportunity.Update)
					r.Delete("/", h.Opportunity.Delete)
					r.Get("/candidates", h.Opportunity.ListCandidates)
					r.Post("/candidates", h.Opportunity.LinkCandidate)
				})
			})

			r.Route("/certificates", func(r chi.Router) {
				r.Get("/", h.Certificate.List)
				r.Post("/", h.Certificate.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Certificate.GetByID)
					r.Put("/", h.Certificate.Update)
					r.Delete("/", h.Certificate.Delete)
					r.Get("/candidates", h.Certificate.ListHolders)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/upload", h.Document.Upload)
				r.Get("/entity/{entityType}/{entityId}", h.Document.ListByEntity)
				r.Get("/{id}/download", h.Document.Download)
				r.Delete("/{id}", h.Document.Delete)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Post("/", h.Activity.Create)
				r.Get("/recent", h.Activity.ListRecent)
				r.Get("/overdue", h.Activity.ListOverdue)
				r.Get("/upcoming", h.Activity.ListUpcoming)
				r.Get("/parent/{parentType}/{parentId}", h.Activity.ListByParent)
				r.Put("/{id}", h.Activity.Update)
				r.Delete("/{id}", h.Activity.Delete)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Job.List)
				r.Post("/", h.Job.Create)
				r.Get("/active/summary", h.Job.ActiveSummary)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/monthly", h.Attendance.UpsertMonthly)
					r.Get("/monthly/{jobId}/{year}/{month}", h.Attendance.GetMonthly)
					r.Post("/{jobId}/{year}/{month}/{day}", h.Attendance.UpsertDay)
					r.Get("/{jobId}/{year}/{month}/{day}", h.Attendance.GetDay)
					r.Get("/{jobId}/{year}/{month}", h.Attendance.MonthlyView)
				})

				r.Route("/invoice", func(r chi.Router) {
					r.Post("/generate/{jobId}/{year}/{month}", h.Invoice.GenerateForJob)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Job.GetByID)
					r.Put("/", h.Job.Update)
					r.Delete("/", h.Job.Delete)
					r.Get("/profit", h.Job.ProfitMargin)
					r.Get("/finances", h.Job.FinanceDetail)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/generate-monthly", h.Invoice.GenerateForPartner)
				r.Post("/generate", h.Invoice.GenerateForJobSet)
				r.Get("/period/{year}/{month}", h.Invoice.ListByPeriod)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Invoice.GetByID)
					r.Get("/document", h.Invoice.DownloadDocument)
					r.Post("/document/retry", h.Invoice.RetryDocument)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.Payment.List)
				r.Post("/", h.Payment.Create)
				r.Get("/report/{year}/{month}", h.Payment.MonthlyReport)
			})

			r.Route("/escalations", func(r chi.Router) {
				r.Get("/", h.Escalation.List)
				r.Post("/", h.Escalation.Create)
				r.Put("/{id}/resolve", h.Escalation.Resolve)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Route("/working-days", func(r chi.Router) {
					r.Post("/", h.Attendance.SetWorkingDays)
					r.Get("/{year}", h.Attendance.ListWorkingDays)
				})

				r.Route("/admin", func(r chi.Router) {
					r.Get("/technologies", h.Taxonomy.ListTechnologies)
					r.Post("/technologies", h.Taxonomy.CreateTechnology)
					r.Delete("/technologies/{id}", h.Taxonomy.DeleteTechnology)
					r.Get("/technologies/{id}/domains", h.Taxonomy.ListDomainsByTechnology)
					r.Post("/domains", h.Taxonomy.CreateDomain)
					r.Delete("/domains/{id}", h.Taxonomy.DeleteDomain)
					r.Get("/domains/{id}/skills", h.Taxonomy.ListSkillsByDomain)
					r.Post("/skills", h.Taxonomy.CreateSkill)
					r.Delete("/skills/{id}", h.Taxonomy.DeleteSkill)
				})
			})
		})
	})
	return r
}
