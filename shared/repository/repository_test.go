package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ehotels/infras/otel/mocks"
	"ehotels/infras/postgres"
	"ehotels/shared"
	"ehotels/shared/dto"
	"ehotels/shared/model"
	"ehotels/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hotel struct {
	HotelID   int64  `db:"hotel_id" insert:"false"`
	HotelName string `db:"hotel_name"`
	Rating    int    `db:"rating"`
	ChainName string `db:"chain_name" table:"hotel_chains"`
	model.Metadata
}

func (hotel) GetJoinQuery() string {
	return "LEFT JOIN hotel_chains ON hotel_chains.hotel_chain_id = hotels.hotel_chain_id"
}

type setup struct {
	repo repository.Repository[hotel]
	mock sqlmock.Sqlmock
	db   *sqlx.DB
}

func newSetup(t *testing.T) setup {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return setup{
		repo: repository.NewRepository[hotel]("hotel", "hotels", "hotel_id", conn, mocks.NewOtel(), repository.WithOrderBy("hotels.hotel_name ASC")),
		mock: mock,
		db:   sqlxDB,
	}
}

func (s setup) begin(t *testing.T) *sqlx.Tx {
	t.Helper()

	s.mock.ExpectBegin()

	tx, err := s.db.Beginx()
	require.NoError(t, err)

	return tx
}

func TestNewRepository_InsertColumns(t *testing.T) {
	s := newSetup(t)

	assert.Equal(t, []string{"hotel_name", "rating", "created_at", "modified_at", "created_by", "modified_by"}, s.repo.InsertColumns)
}

func TestGet(t *testing.T) {
	s := newSetup(t)

	s.mock.ExpectPrepare(regexp.QuoteMeta(
		"SELECT hotels.hotel_id, hotels.hotel_name, hotels.rating, hotel_chains.chain_name, hotels.created_at, hotels.modified_at, hotels.created_by, hotels.modified_by FROM hotels LEFT JOIN hotel_chains",
	)).ExpectQuery().
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "hotel_name", "rating", "chain_name"}).AddRow(1, "Harbour View", 4, "Maple Inns"))

	got, err := s.repo.Get(context.Background(), shared.FilterByID(int64(1), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.HotelID)
	assert.Equal(t, "Harbour View", got.HotelName)
	assert.Equal(t, "Maple Inns", got.ChainName)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestGet_NoRowsReturnsZero(t *testing.T) {
	s := newSetup(t)

	s.mock.ExpectPrepare("SELECT").ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id"}))

	got, err := s.repo.Get(context.Background(), shared.FilterByID(int64(99), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.Zero(t, got.HotelID)
}

func TestGetAll_OrderAndPagination(t *testing.T) {
	s := newSetup(t)

	s.mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY hotels.hotel_name ASC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "hotel_name"}).AddRow(1, "A").AddRow(2, "B"))

	got, err := s.repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10}, dto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestGetAll_EmptyIsNotNil(t *testing.T) {
	s := newSetup(t)

	s.mock.ExpectPrepare("SELECT").ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id"}))

	got, err := s.repo.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCount(t *testing.T) {
	s := newSetup(t)

	s.mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(hotels.hotel_id) FROM hotels")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.repo.Count(context.Background(), dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestExistTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	s.mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM hotels WHERE (hotels.hotel_id = $1))")).
		ExpectQuery().
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := s.repo.ExistTx(context.Background(), tx, shared.FilterByID(int64(1), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.True(t, exist)
}

func TestExist_RequiresFilter(t *testing.T) {
	s := newSetup(t)

	_, err := s.repo.Exist(context.Background(), dto.FilterGroup{})

	assert.Error(t, err)
}

func TestGetForUpdateTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	s.mock.ExpectPrepare("WHERE \\(hotels.hotel_id = \\$1\\) FOR UPDATE").
		ExpectQuery().
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "hotel_name"}).AddRow(1, "Harbour View"))

	got, err := s.repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID(int64(1), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.Equal(t, "Harbour View", got.HotelName)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestInsertReturningIDTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	s.mock.ExpectPrepare(regexp.QuoteMeta(
		"INSERT INTO hotels (hotel_name, rating, created_at, modified_at, created_by, modified_by) VALUES ($1, $2, $3, $4, $5, $6) RETURNING hotel_id",
	)).ExpectQuery().
		WithArgs("Harbour View", 4, now, now, "employee:1", "employee:1").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id"}).AddRow(31))

	id, err := s.repo.InsertReturningIDTx(context.Background(), tx, hotel{
		HotelName: "Harbour View",
		Rating:    4,
		Metadata:  model.NewMetadata("employee:1", now),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestInsertTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hotels (hotel_name, rating,")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.repo.InsertTx(context.Background(), tx, hotel{HotelName: "Harbour View"})

	assert.NoError(t, err)
}

func TestUpdateTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE hotels SET hotel_name = $1, rating = $2 WHERE (hotels.hotel_id = $3)")).
		WithArgs("Harbour View", 5, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := s.repo.UpdateTx(context.Background(), tx,
		map[string]any{"rating": 5, "hotel_name": "Harbour View"},
		shared.FilterByID(int64(1), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestDeleteTx(t *testing.T) {
	s := newSetup(t)
	tx := s.begin(t)

	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM hotels WHERE (hotels.hotel_id = $1)")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := s.repo.DeleteTx(context.Background(), tx, shared.FilterByID(int64(8), "hotel_id", "hotels"))

	require.NoError(t, err)
	assert.Zero(t, affected)

	_, err = s.repo.DeleteTx(context.Background(), tx, dto.FilterGroup{})
	assert.Error(t, err, "delete without filter is refused")
}
