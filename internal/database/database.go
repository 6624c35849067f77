package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"murmur/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type MethodsDB interface {
	CloseDB() error
	RunMigrations() error
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
	log *logrus.Logger
}

var _ MethodsDB = (*DB)(nil)

func New(db *sqlx.DB, logger *logrus.Logger) *DB {
	return &DB{DB: db, log: logger}
}

func ConnectDB(cfg *config.Config, logger *logrus.Logger) (*DB, error) {
	logger.WithFields(logrus.Fields{
		"host":   cfg.DB.DbHOST,
		"dbname": cfg.DB.DbNAME,
	}).Info("Подключаемся к БД")

	db, err := sqlx.Connect("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	dbStruct := New(db, logger)

	if err := dbStruct.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("проверка БД не пройдена: %w", err)
	}

	logger.Info("Успешное подключение к PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded schema. The migrate instance is not
// closed because that would close the shared *sql.DB as well.
func (db *DB) RunMigrations() error {
	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("ошибка инициализации драйвера миграций: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("ошибка чтения файлов миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("ошибка создания мигратора: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ошибка при выполнении миграций: %w", err)
	}

	version, dirty, versionErr := m.Version()
	fields := logrus.Fields{}
	if versionErr == nil {
		fields["version"] = version
		fields["dirty"] = dirty
	}

	if errors.Is(err, migrate.ErrNoChange) {
		db.log.WithFields(fields).Info("Новых миграций нет")
	} else {
		db.log.WithFields(fields).Info("Миграции успешно применены")
	}

	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}

	return db.PingContext(ctx)
}
