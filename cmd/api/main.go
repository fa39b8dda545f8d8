package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/config"
	appHTTP "github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/jwt"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/oauth"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/render"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/storage"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/repository/postgresql"
	activityService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/activity"
	attendanceService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/attendance"
	authService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/auth"
	candidateService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/candidate"
	certificateService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/certificate"
	documentService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/document"
	escalationService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/escalation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/service/file"
	invoiceService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/invoice"
	jobService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/job"
	opportunityService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/opportunity"
	paymentService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/payment"
	taxonomyService "github.com/shivamvermasf/consultefy-hiring-backend/internal/service/taxonomy"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/service/trustscore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	opportunityRepo := postgresql.NewOpportunityRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	calendarRepo := postgresql.NewWorkingCalendarRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	escalationRepo := postgresql.NewEscalationRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	taxonomyRepo := postgresql.NewTaxonomyRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	invoiceRenderer := render.NewTextRenderer()
	trustRecorder := trustscore.NewRecorder(candidateRepo)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, googleSvc)
	candidateSvc := candidateService.NewCandidateService(db, candidateRepo, fileSvc)
	opportunitySvc := opportunityService.NewOpportunityService(db, opportunityRepo, candidateRepo)
	jobSvc := jobService.NewJobService(db, jobRepo, opportunityRepo, candidateRepo, invoiceRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, calendarRepo, jobRepo)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, jobRepo, candidateRepo, attendanceRepo, calendarRepo, invoiceRenderer, fileSvc)
	paymentSvc := paymentService.NewPaymentService(db, paymentRepo, candidateRepo, jobRepo, trustRecorder)
	escalationSvc := escalationService.NewEscalationService(db, escalationRepo, candidateRepo, jobRepo, trustRecorder)
	documentSvc := documentService.NewDocumentService(documentRepo, fileSvc)
	certificateSvc := certificateService.NewCertificateService(db, certificateRepo, candidateRepo)
	activitySvc := activityService.NewActivityService(activityRepo)
	taxonomySvc := taxonomyService.NewTaxonomyService(taxonomyRepo)

	router := appHTTP.NewRouter(jwtSvc, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtSvc, authSvc, cfg.App.FrontendURL),
		Candidate:   appHTTP.NewCandidateHandler(candidateSvc),
		Opportunity: appHTTP.NewOpportunityHandler(opportunitySvc),
		Job:         appHTTP.NewJobHandler(jobSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Invoice:     appHTTP.NewInvoiceHandler(invoiceSvc),
		Payment:     appHTTP.NewPaymentHandler(paymentSvc),
		Escalation:  appHTTP.NewEscalationHandler(escalationSvc),
		Document:    appHTTP.NewDocumentHandler(documentSvc),
		Certificate: appHTTP.NewCertificateHandler(certificateSvc),
		Activity:    appHTTP.NewActivityHandler(activitySvc),
		Taxonomy:    appHTTP.NewTaxonomyHandler(taxonomySvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
