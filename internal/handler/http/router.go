package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/handler/http/middleware"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paydesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeactivateEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/{employeeID}/summary", attendanceHandler.GetSummary)
				r.Get("/{employeeID}/calendar", attendanceHandler.GetMonthlyCalendar)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/mark", attendanceHandler.MarkAttendance)
					r.Post("/mark/batch", attendanceHandler.BatchMarkAttendance)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/{employeeID}", overtimeHandler.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", overtimeHandler.Approve)
					r.Post("/{id}/reject", overtimeHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/projections", payrollHandler.SalaryProjections)

				r.Route("/periods", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPeriods)
					r.Get("/{id}", payrollHandler.GetPeriod)
					r.Get("/{id}/payslips/{employeeID}", payrollHandler.GeneratePayslip)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", payrollHandler.CreatePeriod)
						r.Post("/{id}/approve", payrollHandler.ApprovePeriod)
						r.Post("/{id}/process", payrollHandler.ProcessPeriod)
						r.Post("/{id}/generate", payrollHandler.GeneratePayroll)
						r.Post("/{id}/calculate/{employeeID}", payrollHandler.CalculateSalary)
					})
				})
			})

			// Master data, admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", masterHandler.ListShifts)
					r.Post("/", masterHandler.CreateShift)
					r.Get("/{id}", masterHandler.GetShift)
					r.Put("/{id}", masterHandler.UpdateShift)
				})

				r.Route("/benefits", func(r chi.Router) {
					r.Post("/", masterHandler.CreateBenefitItem)
					r.Get("/employee/{employeeID}", masterHandler.ListBenefitItems)
					r.Put("/{id}", masterHandler.UpdateBenefitItem)
				})

				r.Route("/tax-brackets", func(r chi.Router) {
					r.Get("/", masterHandler.GetTaxBrackets)
					r.Put("/", masterHandler.ReplaceTaxBrackets)
				})
			})
		})
	})
	return r
}
