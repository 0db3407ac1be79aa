package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "tankbudget-url"
)

// errDatabaseClosed is the message database/sql uses for a closed database. The
// error value itself is not exported.
const errDatabaseClosed = "sql: database is closed"

func config() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return register(db)
}

// ConnectPostgres connects to a PostgreSQL database with the
// given DSN and migrates the schema.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return register(db)
}

// register adds the error translating callbacks and sets DB.
func register(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "tankbudget:after_query", queryCallback},
		{db.Callback().Query().After("*"), "tankbudget:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "tankbudget:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "tankbudget:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "tankbudget:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "tankbudget:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "tankbudget:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps violated unique constraints to user friendly errors.
//
// SQLite reports the columns, PostgreSQL the index name, so both are matched.
var uniqueConstraints = []struct {
	matches []string
	err     error
}{
	{[]string{"categories.owner_id, categories.folded_name", "idx_category_owner_folded_name"}, ErrCategoryNameNotUnique},
	{[]string{"users.email", "idx_user_email"}, ErrEmailNotUnique},
	{[]string{"users.username", "idx_user_username"}, ErrUsernameNotUnique},
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for _, c := range uniqueConstraints {
		for _, m := range c.matches {
			if strings.Contains(db.Error.Error(), m) {
				db.Error = c.err
				return
			}
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isGeneral(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

func isGeneral(err error) bool {
	return err.Error() == errDatabaseClosed || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{})
}

// transaction runs fc in a database transaction.
//
// Errors from beginning or committing the transaction do not pass through
// the callbacks, they are translated here.
func transaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	err := db.Transaction(fc)
	if err != nil && isGeneral(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, Category{}, SubCategory{}, Income{}, IncomeTarget{}, Expense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
