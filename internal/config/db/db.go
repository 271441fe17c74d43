package db

import (
	"fmt"
	"log"

	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/domain/response"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models lists every table owned by the service, in migration order.
var Models = []any{
	&user.User{},
	&template.Template{},
	&response.Response{},
	&audit.AuditLog{},
}

func Init() {
	var dialector gorm.Dialector
	switch config.DbDriver {
	case "sqlite":
		dialector = sqlite.Open(config.SqlitePath)
	default:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DbHost,
			config.DbPort,
			config.DbUser,
			config.DbPassword,
			config.DbName,
		)
		dialector = postgres.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(Models...)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
