package transaction_test

import (
	"context"
	"errors"
	"testing"

	"ehotels/infras/otel/mocks"
	"ehotels/infras/postgres"
	"ehotels/shared/failure"
	"ehotels/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (transaction.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres")}

	return transaction.New(conn, mocks.NewOtel()), mock
}

func TestWithinTransaction_Commit(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "UPDATE bookings SET status = 'Cancelled' WHERE booking_id = 10")

		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollbackKeepsError(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	notFound := failure.NotFound("booking not found")

	err := transactor.WithinTransaction(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
		return notFound
	})

	assert.Same(t, notFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_BeginFails(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := transactor.WithinTransaction(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
		called = true

		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestWithinTransaction_CommitFails(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := transactor.WithinTransaction(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
		return nil
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_PanicRollsBack(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = transactor.WithinTransaction(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
