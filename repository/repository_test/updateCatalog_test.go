package repository_test_test

import (
	"testing"
	"taberu_api_ms/repository"
	"taberu_api_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUpdateRestaurant_TranslatesJsonFieldNames(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	// Clients send the json vocabulary; the column is snake_case
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "restaurants" SET "is_highlighted"=\$1 WHERE id = \$2`).
		WithArgs(true, "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewRestaurantRepository()
	err := repo.Update(conn, "r1", map[string]interface{}{
		"isHighlighted": true,
		"bogusField":    "dropped",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRestaurant_NoKnownFields(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	repo := repository.NewRestaurantRepository()
	err := repo.Update(conn, "r1", map[string]interface{}{"bogusField": 1})

	// Nothing updatable means no statement at all
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_TranslatesJsonFieldNames(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET "text"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("edited", "2026-08-29T12:00:00Z", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewCommentRepository()
	err := repo.Update(conn, "c1", map[string]interface{}{
		"text":      "edited",
		"updatedAt": "2026-08-29T12:00:00Z",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCategory_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categories" SET "name"=\$1 WHERE id = \$2`).
		WithArgs("Sushi", "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewCategoryRepository()
	err := repo.Update(conn, "cat-1", map[string]interface{}{"name": "Sushi"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
