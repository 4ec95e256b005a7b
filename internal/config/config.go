package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                          string
	ServiceName                     string
	ServiceVersion                  string
	HTTPAddr                        string
	ReadTimeout                     time.Duration
	WriteTimeout                    time.Duration
	ShutdownTimeout                 time.Duration
	LogLevel                        logging.Level
	LogFormat                       string
	CORSAllowedOrigins              []string
	SwaggerEnabled                  bool
	DBURL                           string
	DBBinaryParameters              bool
	DBMaxOpenConns                  int
	DBMaxIdleConns                  int
	DBAutoMigrate                   bool
	CacheEnabled                    bool
	CacheTTL                        time.Duration
	JWTSecret                       string
	JWTTTL                          time.Duration
	BcryptCost                      int
	SportradarBaseURL               string
	SportradarAPIKey                string
	SportradarTimeout               time.Duration
	SportradarMaxRetries            int
	SportradarCircuitEnabled        bool
	SportradarCircuitFailureCount   int
	SportradarCircuitOpenTimeout    time.Duration
	SportradarCircuitHalfOpenMaxReq int
	AggregationMaxConcurrency       int
	StatsSyncMaxWorkers             int
	UptraceEnabled                  bool
	UptraceDSN                      string
	PyroscopeEnabled                bool
	PyroscopeServerAddress          string
	PyroscopeAppName                string
	PyroscopeAuthToken              string
	PyroscopeBasicAuthUser          string
	PyroscopeBasicAuthPassword      string
	PyroscopeUploadRate             time.Duration
	PprofEnabled                    bool
	PprofAddr                       string
}

// LoadDotEnv loads the given env files (".env" when none) without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := parsePositiveDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", logging.FormatJSON)))
	if logFormat != logging.FormatJSON && logFormat != logging.FormatConsole {
		return Config{}, fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", logFormat, logging.FormatJSON, logging.FormatConsole)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	dbBinaryParameters, err := strconv.ParseBool(getEnv("DB_BINARY_PARAMETERS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BINARY_PARAMETERS: %w", err)
	}
	dbMaxOpenConns, err := parsePositiveInt("DB_MAX_OPEN_CONNS", 20)
	if err != nil {
		return Config{}, err
	}
	dbMaxIdleConns, err := parsePositiveInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}
	if dbMaxIdleConns > dbMaxOpenConns {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be <= DB_MAX_OPEN_CONNS")
	}
	dbAutoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := parsePositiveDuration("CACHE_TTL", "10m")
	if err != nil {
		return Config{}, err
	}

	jwtSecret := strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if jwtSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", EnvProd)
		}
		jwtSecret = "dev-only-secret-change-me"
	}
	jwtTTL, err := parsePositiveDuration("JWT_TTL", "168h")
	if err != nil {
		return Config{}, err
	}
	bcryptCost, err := getEnvAsInt("BCRYPT_COST", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
	}
	if bcryptCost < 4 || bcryptCost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	sportradarAPIKey := strings.TrimSpace(getEnv("SPORTRADAR_API_KEY", ""))
	if appEnv == EnvProd && sportradarAPIKey == "" {
		return Config{}, fmt.Errorf("SPORTRADAR_API_KEY is required when APP_ENV=%s", EnvProd)
	}
	sportradarTimeout, err := parsePositiveDuration("SPORTRADAR_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	sportradarMaxRetries, err := getEnvAsInt("SPORTRADAR_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_MAX_RETRIES: %w", err)
	}
	if sportradarMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTRADAR_MAX_RETRIES must be >= 0")
	}
	sportradarCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTRADAR_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_CIRCUIT_ENABLED: %w", err)
	}
	sportradarCircuitFailureCount, err := parsePositiveInt("SPORTRADAR_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, err
	}
	sportradarCircuitOpenTimeout, err := parsePositiveDuration("SPORTRADAR_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	sportradarCircuitHalfOpenMaxReq, err := parsePositiveInt("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, err
	}

	aggregationMaxConcurrency, err := parsePositiveInt("AGGREGATION_MAX_CONCURRENCY", 8)
	if err != nil {
		return Config{}, err
	}
	statsSyncMaxWorkers, err := parsePositiveInt("STATS_SYNC_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "nfl-fantasy-pickem-api")

	return Config{
		AppEnv:                          appEnv,
		ServiceName:                     serviceName,
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                        getEnv("APP_HTTP_ADDR", ":5000"),
		ReadTimeout:                     readTimeout,
		WriteTimeout:                    writeTimeout,
		ShutdownTimeout:                 shutdownTimeout,
		LogLevel:                        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                       logFormat,
		CORSAllowedOrigins:              splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:                  swaggerEnabled,
		DBURL:                           dbURL,
		DBBinaryParameters:              dbBinaryParameters,
		DBMaxOpenConns:                  dbMaxOpenConns,
		DBMaxIdleConns:                  dbMaxIdleConns,
		DBAutoMigrate:                   dbAutoMigrate,
		CacheEnabled:                    cacheEnabled,
		CacheTTL:                        cacheTTL,
		JWTSecret:                       jwtSecret,
		JWTTTL:                          jwtTTL,
		BcryptCost:                      bcryptCost,
		SportradarBaseURL:               getEnv("SPORTRADAR_BASE_URL", "https://api.sportradar.com/nfl/official/trial/v7/en"),
		SportradarAPIKey:                sportradarAPIKey,
		SportradarTimeout:               sportradarTimeout,
		SportradarMaxRetries:            sportradarMaxRetries,
		SportradarCircuitEnabled:        sportradarCircuitEnabled,
		SportradarCircuitFailureCount:   sportradarCircuitFailureCount,
		SportradarCircuitOpenTimeout:    sportradarCircuitOpenTimeout,
		SportradarCircuitHalfOpenMaxReq: sportradarCircuitHalfOpenMaxReq,
		AggregationMaxConcurrency:       aggregationMaxConcurrency,
		StatsSyncMaxWorkers:             statsSyncMaxWorkers,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      uptraceDSN,
		PyroscopeEnabled:                pyroscopeEnabled,
		PyroscopeServerAddress:          pyroscopeServerAddress,
		PyroscopeAppName:                getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:              getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:          getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword:      getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:             pyroscopeUploadRate,
		PprofEnabled:                    pprofEnabled,
		PprofAddr:                       pprofAddr,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	level, ok := logging.ParseLevel(v)
	if !ok {
		return logging.LevelInfo
	}
	return level
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	value, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value < 1 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
