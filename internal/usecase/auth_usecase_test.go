package usecase

import (
	"context"
	"errors"
	"testing"

	"meddesk-hms/internal/domain/entity"
	repoImpl "meddesk-hms/internal/repository"
	"meddesk-hms/internal/service"
	"meddesk-hms/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "party_id", "username", "password_hash", "account_status"}

func setupAuthUsecase(t *testing.T, verifier service.CredentialVerifier) (AuthUsecase, sqlmock.Sqlmock) {
	db, mock := testutil.NewMockDB(t)
	uc := NewAuthUsecase(db, newTestLogger(), repoImpl.NewUserRepository(), verifier)
	return uc, mock
}

func expectUser(mock sqlmock.Sqlmock, username, stored, status string) {
	mock.ExpectQuery(`FROM "users" WHERE username = \$1`).
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(1), nil, username, stored, status))
}

func TestVerifyUserPassword_UserNotFound(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())

	mock.ExpectQuery(`FROM "users" WHERE username = \$1`).
		WithArgs("nouser").
		WillReturnRows(sqlmock.NewRows(userColumns))

	result, err := uc.VerifyUserPassword(context.Background(), "nouser", "x")

	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Nil(t, result.User)
	assert.Equal(t, "User not found", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyUserPassword_InactiveAccountRegardlessOfPassword(t *testing.T) {
	for _, password := range []string{"secret", "wrong"} {
		uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())
		expectUser(mock, "clerk", "secret", entity.AccountStatusInactive)

		result, err := uc.VerifyUserPassword(context.Background(), "clerk", password)

		require.NoError(t, err)
		assert.False(t, result.OK)
		assert.Nil(t, result.User)
		assert.Equal(t, "Account is not active", result.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestVerifyUserPassword_WrongPassword(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())
	expectUser(mock, "admin", "admin123", "Active")

	result, err := uc.VerifyUserPassword(context.Background(), "admin", "admin124")

	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Nil(t, result.User)
	assert.Equal(t, "Invalid username or password", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyUserPassword_OK(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())
	// status is compared trimmed and case-insensitively
	expectUser(mock, "admin", "admin123", "  ACTIVE ")

	result, err := uc.VerifyUserPassword(context.Background(), "admin", "admin123")

	require.NoError(t, err)
	assert.True(t, result.OK)
	require.NotNil(t, result.User)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, "OK", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyUserPassword_LookupFailure(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())

	mock.ExpectQuery(`FROM "users"`).WillReturnError(errors.New("connection refused"))

	result, err := uc.VerifyUserPassword(context.Background(), "admin", "admin123")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsDataAccessError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyUserPassword_HashedCredentials(t *testing.T) {
	verifier := service.NewHashedComparison(bcrypt.MinCost)
	stored, err := verifier.Encode("s3cret")
	require.NoError(t, err)

	uc, mock := setupAuthUsecase(t, verifier)
	expectUser(mock, "doc", stored, "Active")

	result, err := uc.VerifyUserPassword(context.Background(), "doc", "s3cret")

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_StoresPlaintextAndDefaultsToActive(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(nil, "nurse", "pw", "Active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	user, err := uc.CreateUser(context.Background(), &CreateUserInput{Username: "nurse", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "pw", user.PasswordHash)
	assert.Equal(t, "Active", user.AccountStatus)
	assert.Nil(t, user.PartyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_LinksParty(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())
	partyID := int64(42)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(partyID, "ann", "pw", entity.AccountStatusInactive).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))
	mock.ExpectCommit()

	user, err := uc.CreateUser(context.Background(), &CreateUserInput{
		Username: "ann",
		Password: "pw",
		PartyID:  &partyID,
		Status:   entity.AccountStatusInactive,
	})

	require.NoError(t, err)
	require.NotNil(t, user.PartyID)
	assert.Equal(t, partyID, *user.PartyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_HashedCredentials(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewHashedComparison(bcrypt.MinCost))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(nil, "doc", sqlmock.AnyArg(), "Active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	user, err := uc.CreateUser(context.Background(), &CreateUserInput{Username: "doc", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	mock.ExpectRollback()

	user, err := uc.CreateUser(context.Background(), &CreateUserInput{Username: "admin", Password: "x"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.True(t, IsDataAccessError(err))
	// the driver error stays in the chain
	assert.True(t, IsDuplicateKey(err, "username"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_StoreFailure(t *testing.T) {
	uc, mock := setupAuthUsecase(t, service.NewPlaintextComparison())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := uc.CreateUser(context.Background(), &CreateUserInput{Username: "admin", Password: "x"})

	require.Error(t, err)
	assert.True(t, IsDataAccessError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
