package services

import (
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/services/repositories"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
	driver   string

	users     *repositories.UserRepository
	catalog   *repositories.CatalogRepository
	progress  *repositories.ProgressRepository
	content   *repositories.ContentRepository
	analytics *repositories.AnalyticsRepository
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds PostgresService) Users() *repositories.UserRepository {
	return ds.users
}

func (ds PostgresService) Catalog() *repositories.CatalogRepository {
	return ds.catalog
}

func (ds PostgresService) Progress() *repositories.ProgressRepository {
	return ds.progress
}

func (ds PostgresService) Content() *repositories.ContentRepository {
	return ds.content
}

func (ds PostgresService) Analytics() *repositories.AnalyticsRepository {
	return ds.analytics
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")

	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" && ds.driver != "sqlite" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "qazkids"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	if ds.driver == "sqlite" && ds.database == "" {
		ds.database = os.Getenv("DB_NAME")
		if ds.database == "" {
			ds.database = "qazkids.db"
		}
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(ds.dialector(), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	err = ds.db.AutoMigrate(Models()...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.users = repositories.NewUserRepository(ds.db)
	ds.catalog = repositories.NewCatalogRepository(ds.db)
	ds.progress = repositories.NewProgressRepository(ds.db)
	ds.content = repositories.NewContentRepository(ds.db)
	ds.analytics = repositories.NewAnalyticsRepository(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

// dialector picks sqlite for local development when DB_DRIVER=sqlite,
// postgres otherwise. Mirrors the deployment split the seed CLI uses.
func (ds *PostgresService) dialector() gorm.Dialector {
	if ds.driver == "sqlite" {
		return sqlite.Open(ds.database)
	}
	return postgres.Open(ds.database)
}

// Models lists every table the API owns; shared with the seed CLI.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Game{},
		&model.Film{},
		&model.Progress{},
		&model.Achievement{},
		&model.Location{},
		&model.Content{},
		&model.Analytics{},
	}
}
