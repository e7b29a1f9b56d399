package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// parseEnv populates selected Config fields from environment variables.
//
// Supported variables:
//
//	PORT               HTTP port (bind address becomes ":<PORT>")
//	DB_HOST, DB_PORT   document store host/port (combined into the Mongo URI)
//	DB_DATABASE        document store database name
//	DATABASE_DRIVER    "mongo" or "postgres"
//	DATABASE_DSN       PostgreSQL DSN
//	REDIS_ADDR         KV store address
//	REDIS_PASSWORD     KV store password
//	SESSION_TTL        session lifetime, e.g. "24h"
//	FOLDER_PATH        root directory for content objects
//	STORAGE_DRIVER     "fs" or "s3"
//	QUEUE_NAME         thumbnail job queue name
//	WORKER_CONCURRENCY number of thumbnail workers
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
//
// PORT, DB_HOST, DB_PORT, DB_DATABASE and FOLDER_PATH keep the names the
// legacy deployment already exports.
func parseEnv(config *Config) {

	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	if host != "" || port != "" {
		if host == "" {
			host = "localhost"
		}
		if port == "" {
			port = "27017"
		}
		config.MongoURI = fmt.Sprintf("mongodb://%s:%s", host, port)
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		config.MongoDatabase = v
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		config.DatabaseDriver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.RedisPassword = v
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTTL = d
		}
	}

	if v := os.Getenv("FOLDER_PATH"); v != "" {
		config.FolderPath = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		config.StorageDriver = v
	}
	if v := os.Getenv("QUEUE_NAME"); v != "" {
		config.QueueName = v
	}
	if v := os.Getenv("WORKER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.WorkerConcurrency = n
		}
	}

	if v := os.Getenv("S3_ROOT_USER"); v != "" {
		config.S3RootUser = v
	}
	if v := os.Getenv("S3_ROOT_PASSWORD"); v != "" {
		config.S3RootPassword = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		config.S3Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		config.S3Region = v
	}
	if v := os.Getenv("S3_BASE_ENDPOINT"); v != "" {
		config.S3BaseEndpoint = v
	}
}
