package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Database *DatabaseConfig
	Cache    *CacheConfig
	Email    *EmailConfig
	Auth     *AuthConfig
	AWS      *AWSConfig
}

type ServerConfig struct {
	AppName        string        // Printdoot
	Environment    string        // development, production
	Port           string        // :8080
	FrontendURL    string        // https://printdoot.com
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ProductTTL   time.Duration // TTL for cached product lookups
}

type EmailConfig struct {
	ApiKey     string
	From       string
	OwnerEmail string // recipient for new-order notifications
}

type AuthConfig struct {
	AdminTokenSecret  string
	AdminTokenExpiry  time.Duration
	AdminPasswordHash string // bcrypt hash of the admin password
}

type AWSConfig struct {
	Region        string
	BucketName    string
	CloudfrontURL string // optional CDN base for uploaded assets
}
