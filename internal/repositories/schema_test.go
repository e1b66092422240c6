package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestBootstrap(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec("CREATE SCHEMA IF NOT EXISTS").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = Bootstrap(context.Background(), sqlxDB)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec("CREATE SCHEMA IF NOT EXISTS").
		WillReturnError(assert.AnError)

	err = Bootstrap(context.Background(), sqlxDB)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
