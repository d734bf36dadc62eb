package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for fields without tags.
const EnvPrefix = "GOLFBALL"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "GOLFBALL_APP_ENV"
	EnvDBDSN  = "GOLFBALL_DB_DSN"
	EnvDBHost = "GOLFBALL_DB_HOST"
	EnvDBUser = "GOLFBALL_DB_USER"
	EnvDBName = "GOLFBALL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
