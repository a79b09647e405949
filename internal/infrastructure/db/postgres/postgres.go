package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/taskden/todo-api/internal/core/domain"
)

// Connect opens the PostgreSQL connection pool and migrates the schema.
// TranslateError maps driver constraint violations onto gorm sentinel errors
// (ErrDuplicatedKey, ErrForeignKeyViolated) so the repositories can turn them
// into domain errors.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	if err := db.AutoMigrate(&domain.Account{}, &domain.List{}, &domain.Item{}, &domain.Activity{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}
