package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays values from environment variables. Unset or blank
// variables leave the current value alone. PORT carries only a port number
// and is turned into ":<port>".
func parseEnv(config *Config, getenv func(string) string) error {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }

	if v := get("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		config.EndpointAddrHTTP = ":" + v
	}

	for key, dst := range map[string]*string{
		"GRPC_ADDR":           &config.EndpointAddrGRPC,
		"STORAGE_BACKEND":     &config.StorageBackend,
		"DATABASE_URL":        &config.DatabaseDSN,
		"MONGO_URI":           &config.MongoURI,
		"MONGO_AUTH_DATABASE": &config.MongoAuthDatabase,
		"MONGO_DATA_DATABASE": &config.MongoDataDatabase,
		"JWT_SECRET":          &config.SecretKey,
		"LOG_BACKEND":         &config.LogBackend,
		"LOG_LEVEL":           &config.LogLevel,
		"LOG_FILE":            &config.LogFile,
		"S3_ACCESS_KEY":       &config.S3AccessKey,
		"S3_SECRET_KEY":       &config.S3SecretKey,
		"S3_BUCKET":           &config.S3Bucket,
		"S3_REGION":           &config.S3Region,
		"S3_ENDPOINT":         &config.S3BaseEndpoint,
		"ICON_BASE_URL":       &config.IconBaseURL,
	} {
		if v := get(key); v != "" {
			*dst = v
		}
	}

	if v := get("CORS_ORIGINS"); v != "" {
		config.CORSOrigins = splitList(v)
	}

	for key, dst := range map[string]*bool{
		"MONGO_TRANSACTIONS": &config.MongoTransactions,
		"S3_ARCHIVE_TRACKS":  &config.ArchiveTracks,
	} {
		if v := get(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}

	if v := get("PASSWORD_HASH_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PASSWORD_HASH_COST: %w", err)
		}
		config.PasswordHashCost = n
	}

	for key, dst := range map[string]*time.Duration{
		"JWT_TTL":          &config.AccessTokenValidityDuration,
		"SHUTDOWN_TIMEOUT": &config.ShutdownTimeout,
	} {
		if v := get(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}

	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
