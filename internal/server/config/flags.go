package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/filevault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-k string   database driver ("mongo" or "postgres")
//	-m string   Mongo URI
//	-n string   Mongo database name
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-t int      session TTL, hours
//	-f string   content root directory
//	-s string   storage driver ("fs" or "s3")
//	-q string   thumbnail queue name
//	-w int      worker concurrency
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - The TTL flag is accepted as an integer in hours and converted to a
//     time.Duration.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-k", "-m", "-n", "-d", "-r", "-t", "-f", "-s", "-q", "-w",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "k", config.DatabaseDriver, "database driver (mongo|postgres)")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "mongo URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "mongo database name")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")

	sessionTTLHours := fs.Int("t", int(config.SessionTTL.Hours()), "session TTL (in hours)")

	fs.StringVar(&config.FolderPath, "f", config.FolderPath, "content root directory")
	fs.StringVar(&config.StorageDriver, "s", config.StorageDriver, "storage driver (fs|s3)")
	fs.StringVar(&config.QueueName, "q", config.QueueName, "thumbnail queue name")
	fs.IntVar(&config.WorkerConcurrency, "w", config.WorkerConcurrency, "worker concurrency")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTLHours) * time.Hour
}
