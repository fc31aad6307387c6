package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/hikekeeper/internal/timex"
)

// FileConfig defines a configuration structure tailored for JSON and YAML
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading config files.
// Pointer fields distinguish "absent" from an explicit zero value; only the
// fields present in the file are copied into the runtime Config.
type FileConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	StorageBackend              *string         `json:"storage_backend" yaml:"storage_backend"`
	DatabaseDSN                 *string         `json:"database_dsn" yaml:"database_dsn"`
	MongoURI                    *string         `json:"mongo_uri" yaml:"mongo_uri"`
	MongoAuthDatabase           *string         `json:"mongo_auth_database" yaml:"mongo_auth_database"`
	MongoDataDatabase           *string         `json:"mongo_data_database" yaml:"mongo_data_database"`
	MongoTransactions           *bool           `json:"mongo_transactions" yaml:"mongo_transactions"`
	SecretKey                   *string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	PasswordHashCost            *int            `json:"password_hash_cost" yaml:"password_hash_cost"`
	CORSOrigins                 []string        `json:"cors_origins" yaml:"cors_origins"`
	LogBackend                  *string         `json:"log_backend" yaml:"log_backend"`
	LogLevel                    *string         `json:"log_level" yaml:"log_level"`
	LogFile                     *string         `json:"log_file" yaml:"log_file"`
	S3AccessKey                 *string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey                 *string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket                    *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                    *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ArchiveTracks               *bool           `json:"archive_tracks" yaml:"archive_tracks"`
	IconBaseURL                 *string         `json:"icon_base_url" yaml:"icon_base_url"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// parseFile loads configuration values from a JSON or YAML file into the
// provided Config. The format is picked by extension: .yaml and .yml are
// YAML, everything else is JSON. An empty path is a no-op.
func parseFile(config *Config, path string) error {
	// nothing to load
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	c.apply(config)
	return nil
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoAuthDatabase, c.MongoAuthDatabase)
	setString(&config.MongoDataDatabase, c.MongoDataDatabase)
	if c.MongoTransactions != nil {
		config.MongoTransactions = *c.MongoTransactions
	}
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFile, c.LogFile)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.ArchiveTracks != nil {
		config.ArchiveTracks = *c.ArchiveTracks
	}
	setString(&config.IconBaseURL, c.IconBaseURL)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
