package repository_test_test

import (
	"testing"
	"taberu_api_ms/repository"
	"taberu_api_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestConsumeChallenge_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "challenges" SET "used"=\$1 WHERE challenge_id = \$2 AND used = \$3`).
		WithArgs(true, "ch-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewChallengeRepository()
	consumed, err := repo.Consume(conn, "ch-1")

	assert.NoError(t, err)
	assert.True(t, consumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeChallenge_AlreadyUsed(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "challenges" SET "used"=\$1 WHERE challenge_id = \$2 AND used = \$3`).
		WithArgs(true, "ch-1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := repository.NewChallengeRepository()
	consumed, err := repo.Consume(conn, "ch-1")

	assert.NoError(t, err)
	assert.False(t, consumed, "a spent challenge must not be consumable twice")
	assert.NoError(t, mock.ExpectationsWereMet())
}
