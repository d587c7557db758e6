package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the payroll computation defaults. These are passed to
// the payroll service at construction time instead of living as package
// globals, so tests can run with their own values.
type PayrollConfig struct {
	WorkingDaysPerMonth int
	ShiftHoursPerDay    int
	OvertimeMultiplier  decimal.Decimal
	InsuranceRate       decimal.Decimal
	InsuranceCap        decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "paydesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	workingDays, err := strconv.Atoi(getEnv("PAYROLL_WORKING_DAYS_PER_MONTH", "22"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKING_DAYS_PER_MONTH: %w", err)
	}
	shiftHours, err := strconv.Atoi(getEnv("PAYROLL_SHIFT_HOURS_PER_DAY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_SHIFT_HOURS_PER_DAY: %w", err)
	}
	overtimeMultiplier, err := decimal.NewFromString(getEnv("PAYROLL_OVERTIME_MULTIPLIER", "1.5"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_OVERTIME_MULTIPLIER: %w", err)
	}
	insuranceRate, err := decimal.NewFromString(getEnv("PAYROLL_INSURANCE_RATE", "0.11"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_INSURANCE_RATE: %w", err)
	}
	insuranceCap, err := decimal.NewFromString(getEnv("PAYROLL_INSURANCE_CAP", "9000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_INSURANCE_CAP: %w", err)
	}

	config.Payroll = PayrollConfig{
		WorkingDaysPerMonth: workingDays,
		ShiftHoursPerDay:    shiftHours,
		OvertimeMultiplier:  overtimeMultiplier,
		InsuranceRate:       insuranceRate,
		InsuranceCap:        insuranceCap,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS must satisfy 0 <= min <= max, max > 0")
	}
	if c.Payroll.WorkingDaysPerMonth <= 0 {
		return fmt.Errorf("PAYROLL_WORKING_DAYS_PER_MONTH must be positive")
	}
	if c.Payroll.ShiftHoursPerDay <= 0 {
		return fmt.Errorf("PAYROLL_SHIFT_HOURS_PER_DAY must be positive")
	}
	if c.Payroll.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_OVERTIME_MULTIPLIER must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
