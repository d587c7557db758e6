package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/paydesk-hq/paydesk-backend-go/internal/config"
	appHTTP "github.com/paydesk-hq/paydesk-backend-go/internal/handler/http"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/cron"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/jwt"
	"github.com/paydesk-hq/paydesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paydesk-hq/paydesk-backend-go/internal/service/attendance"
	serviceAuth "github.com/paydesk-hq/paydesk-backend-go/internal/service/auth"
	employeeService "github.com/paydesk-hq/paydesk-backend-go/internal/service/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/service/master"
	overtimeService "github.com/paydesk-hq/paydesk-backend-go/internal/service/overtime"
	payrollService "github.com/paydesk-hq/paydesk-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	benefitRepo := postgresql.NewBenefitRepository(db)
	taxRepo := postgresql.NewTaxRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, cfg.Payroll.OvertimeMultiplier)
	masterService := master.NewMasterService(shiftRepo, benefitRepo, taxRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		cfg.Payroll,
		payrollRepo,
		employeeRepo,
		overtimeRepo,
		benefitRepo,
		taxRepo,
		attendanceSvc,
	)

	payrollSvc.Subscribe(func(event string, payload interface{}) {
		slog.Info("Payroll event", "event", event)
	})

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(masterService)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		overtimeHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
