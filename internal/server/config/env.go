package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "ADMINPANEL_"

// parseEnv overlays ADMINPANEL_* environment variables onto config.
//
// A dotenv file named by -env is loaded first (it must exist); without the
// flag a ".env" in the working directory is loaded when present. Variables
// already set in the process environment win over the file, which is
// godotenv's behaviour.
//
// Durations accept Go duration strings ("15m"). Malformed values panic, in
// line with the JSON and flag layers.
func parseEnv(config *Config) {
	loadDotenv(flagx.EnvFile())

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("ENDPOINT_ADDR", &config.EndpointAddr)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("SECRET_KEY", &config.SecretKey)
	dur("ACCESS_TOKEN_VALIDITY", &config.AccessTokenValidityDuration)
	dur("REFRESH_TOKEN_VALIDITY", &config.RefreshTokenValidityDuration)
	str("S3_ROOT_USER", &config.S3RootUser)
	str("S3_ROOT_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	str("LOG_BACKEND", &config.LogBackend)
	str("LOG_LEVEL", &config.LogLevel)
	str("LOG_FILE", &config.LogFile)
	str("DATE_LAYOUT", &config.DateLayout)

	if v, ok := os.LookupEnv(envPrefix + "SKIP_MIGRATIONS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.SkipMigrations = b
	}
}

func loadDotenv(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
