package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/discochess/repertoire/internal/codec"
	"github.com/discochess/repertoire/internal/codec/gzipcodec"
	"github.com/discochess/repertoire/internal/codec/noopcodec"
	"github.com/discochess/repertoire/internal/codec/zstdcodec"
	"github.com/discochess/repertoire/internal/store"
	"github.com/discochess/repertoire/internal/store/diskstore"
	"github.com/discochess/repertoire/internal/store/gcsstore"
	"github.com/discochess/repertoire/internal/store/s3store"
)

// Config holds CLI configuration, layered from defaults, an optional
// YAML file named by REPERTOIRE_CONFIG, and REPERTOIRE_-prefixed
// environment variables.
type Config struct {
	// DataDir is where the disk backend keeps saved reports.
	DataDir string `koanf:"data_dir"`

	// Storage selects the report backend: disk, gcs, or s3.
	Storage string `koanf:"storage"`

	// Bucket names the GCS or S3 bucket for remote backends.
	Bucket string `koanf:"bucket"`

	// Prefix is an optional object-key prefix for remote backends.
	Prefix string `koanf:"prefix"`

	// Region is the AWS region for the s3 backend.
	Region string `koanf:"region"`

	// Endpoint points the s3 backend at an S3-compatible service.
	Endpoint string `koanf:"endpoint"`

	// Codec selects report compression: zstd, gzip, or none.
	Codec string `koanf:"codec"`

	// CacheSize bounds the in-memory month-batch cache.
	CacheSize int `koanf:"cache_size"`

	// UserAgent overrides the User-Agent sent to chess.com.
	UserAgent string `koanf:"user_agent"`

	// FetchWorkers bounds concurrent month-batch fetches.
	FetchWorkers int `koanf:"fetch_workers"`

	// ClassifyWorkers bounds concurrent per-game classification.
	ClassifyWorkers int `koanf:"classify_workers"`
}

func defaultConfig() *Config {
	return &Config{
		DataDir:   "./data",
		Storage:   "disk",
		Codec:     "zstd",
		CacheSize: 100,
	}
}

// loadConfig layers defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) if REPERTOIRE_CONFIG is set
//  3. env (prefix REPERTOIRE_)
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("REPERTOIRE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	// Environment variables: REPERTOIRE_DATA_DIR, REPERTOIRE_BUCKET, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("REPERTOIRE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "repertoire_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	cfg := *defaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) codec() (codec.Codec, error) {
	switch c.Codec {
	case "zstd", "":
		return zstdcodec.New(), nil
	case "gzip":
		return gzipcodec.New(), nil
	case "none":
		return noopcodec.New(), nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want zstd, gzip, or none)", c.Codec)
	}
}

// openStore builds the configured report store.
func (c *Config) openStore(ctx context.Context) (store.Store, error) {
	cdc, err := c.codec()
	if err != nil {
		return nil, err
	}

	switch c.Storage {
	case "disk", "":
		return diskstore.New(c.DataDir, cdc)
	case "gcs":
		if c.Bucket == "" {
			return nil, fmt.Errorf("gcs storage requires a bucket")
		}
		return gcsstore.New(ctx, c.Bucket, cdc, gcsstore.WithPrefix(c.Prefix))
	case "s3":
		if c.Bucket == "" {
			return nil, fmt.Errorf("s3 storage requires a bucket")
		}
		var opts []s3store.Option
		if c.Prefix != "" {
			opts = append(opts, s3store.WithPrefix(c.Prefix))
		}
		if c.Region != "" {
			opts = append(opts, s3store.WithRegion(c.Region))
		}
		if c.Endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(c.Endpoint))
		}
		return s3store.New(ctx, c.Bucket, cdc, opts...)
	default:
		return nil, fmt.Errorf("unknown storage %q (want disk, gcs, or s3)", c.Storage)
	}
}
