package services

import (
	"os"

	"gorm.io/gorm"
)

// DbService is the engine-neutral surface the data services build on.
// Implemented by SqliteService and PostgresService; DB_ENGINE picks which
// one the runtime registers.
type DbService interface {
	Db() *gorm.DB
	HandleError(err error) error
}

const (
	EngineSqlite   = "sqlite"
	EnginePostgres = "postgres"
)

// DbEngine returns the configured engine name, defaulting to sqlite.
func DbEngine() string {
	engine := os.Getenv("DB_ENGINE")
	if engine == "" {
		return EngineSqlite
	}
	return engine
}

// DbSvcId maps the configured engine onto the registered service id.
func DbSvcId() string {
	if DbEngine() == EnginePostgres {
		return POSTGRES_SVC
	}
	return SQLITE_SVC
}
