package config

const (
	EnvPrefix = "RECELL"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "RECELL_DB_DSN"
	EnvDBHost = "RECELL_DB_HOST"
	EnvDBUser = "RECELL_DB_USER"
	EnvDBName = "RECELL_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
