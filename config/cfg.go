package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/ilydev-openproject/salesaice/internal/api/http"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/sales"
	"github.com/ilydev-openproject/salesaice/internal/bucket"
	"github.com/ilydev-openproject/salesaice/internal/events"
	"github.com/ilydev-openproject/salesaice/internal/mail"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/ilydev-openproject/salesaice/internal/snapshot"
	"github.com/ilydev-openproject/salesaice/internal/store"
	"github.com/ilydev-openproject/salesaice/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
	Sales     sales.Config     `mapstructure:"sales"`
	Bucket    bucket.Config    `mapstructure:"bucket"`
	Mailer    mail.Config      `mapstructure:"mailer"`
	Events    events.Config    `mapstructure:"events"`
	Snapshot  snapshot.Config  `mapstructure:"snapshot"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. MYSQL__DSN for mysql.dsn.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/salesaice")
		v.AddConfigPath("/etc/salesaice")
		// the config file is optional
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds the MySQL DSN from the individual MYSQL_* variables.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if user == "" || password == "" || database == "" {
		return ""
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

// bindEnvVars binds flat environment variables to config keys, so both
// MYSQL__DSN and MYSQL_DSN work.
func bindEnvVars(v *viper.Viper) {
	binds := map[string]string{
		// MySQL
		"mysql.dsn":                  "MYSQL_DSN",
		"mysql.automigrate":          "MYSQL_AUTOMIGRATE",
		"mysql.max_open_connections": "MYSQL_MAX_OPEN_CONNECTIONS",
		"mysql.max_idle_connections": "MYSQL_MAX_IDLE_CONNECTIONS",
		"mysql.tls_ca_path":          "MYSQL_TLS_CA_PATH",

		// Logger
		"logger.level":      "LOG_LEVEL",
		"logger.add_source": "LOG_ADD_SOURCE",

		// HTTP
		"http.port":             "HTTP_PORT",
		"http.address":          "HTTP_ADDRESS",
		"http.allowed_origins":  "HTTP_ALLOWED_ORIGINS",
		"http.max_body_bytes":   "HTTP_MAX_BODY_BYTES",
		"http.shutdown_timeout": "HTTP_SHUTDOWN_TIMEOUT",

		// Auth
		"auth.jwt_secret":      "AUTH_JWT_SECRET",
		"auth.master_password": "AUTH_MASTER_PASSWORD",
		"auth.jwt_ttl":         "AUTH_JWT_TTL",
		"auth.bcrypt_cost":     "AUTH_BCRYPT_COST",

		// Rate limits
		"rate_limit.login_per_ip":       "RATE_LIMIT_LOGIN_PER_IP",
		"rate_limit.login_per_username": "RATE_LIMIT_LOGIN_PER_USERNAME",
		"rate_limit.import_per_ip":      "RATE_LIMIT_IMPORT_PER_IP",

		// Sales
		"sales.timezone":               "SALES_TIMEZONE",
		"sales.language":               "SALES_LANGUAGE",
		"sales.reward_threshold":       "SALES_REWARD_THRESHOLD",
		"sales.velocity_lookback_days": "SALES_VELOCITY_LOOKBACK_DAYS",

		// Bucket
		"bucket.s3AccessKey":       "BUCKET_S3_ACCESS_KEY",
		"bucket.s3SecretAccessKey": "BUCKET_S3_SECRET_ACCESS_KEY",
		"bucket.s3Endpoint":        "BUCKET_S3_ENDPOINT",
		"bucket.s3BucketName":      "BUCKET_S3_BUCKET_NAME",
		"bucket.s3BucketLocation":  "BUCKET_S3_BUCKET_LOCATION",
		"bucket.baseFolder":        "BUCKET_BASE_FOLDER",
		"bucket.subdomainEndpoint": "BUCKET_SUBDOMAIN_ENDPOINT",
		"bucket.insecure":          "BUCKET_INSECURE",

		// Mailer
		"mailer.sendgrid_api_key": "MAILER_SENDGRID_API_KEY",
		"mailer.from_email":       "MAILER_FROM_EMAIL",
		"mailer.from_email_name":  "MAILER_FROM_EMAIL_NAME",
		"mailer.reply_to":         "MAILER_REPLY_TO",
		"mailer.digest_to":        "MAILER_DIGEST_TO",
		"mailer.digest_hour":      "MAILER_DIGEST_HOUR",
		"mailer.language":         "MAILER_LANGUAGE",
		"mailer.worker_interval":  "MAILER_WORKER_INTERVAL",

		// Events
		"events.url":             "EVENTS_URL",
		"events.exchange":        "EVENTS_EXCHANGE",
		"events.publish_timeout": "EVENTS_PUBLISH_TIMEOUT",

		// Snapshot worker
		"snapshot.worker_interval": "SNAPSHOT_WORKER_INTERVAL",
	}
	for key, env := range binds {
		_ = v.BindEnv(key, env)
	}
}
