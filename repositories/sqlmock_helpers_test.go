package repositories

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	// Important: pass existing *sql.DB to gorm's mysql driver
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // we don't need to ping real server
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}
