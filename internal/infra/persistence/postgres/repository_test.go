package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
)

// dbMock opens GORM over sqlmock the same way the service opens it: no implicit transactions.
func dbMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCredentialRepository_FindByIDNotFound(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "credentials" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	credential, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, credential)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCredentialRepository(db)

	mock.ExpectExec(`INSERT INTO "credentials"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_credentials_email"})

	err := repo.Create(context.Background(), &entity.Credential{
		Email:        "  Asha@Example.com ",
		PasswordHash: "hash",
		Role:         entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, repository.ErrCredentialExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_CreateNormalizesEmail(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCredentialRepository(db)

	mock.ExpectExec(`INSERT INTO "credentials"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	credential := &entity.Credential{Email: "  Asha@Example.com ", PasswordHash: "hash", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(context.Background(), credential))
	assert.Equal(t, "asha@example.com", credential.Email)
	assert.NotEqual(t, uuid.Nil, credential.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnquiryRepository_DecideAlreadyProcessed(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewEnquiryRepository(db)

	mock.ExpectExec(`UPDATE "enquiries" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Decide(context.Background(), uuid.New(), entity.EnquiryDecision{
		Status:    entity.EnquiryApproved,
		DecidedBy: uuid.New(),
		DecidedAt: time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrEnquiryNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnquiryRepository_DecidePending(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewEnquiryRepository(db)

	mock.ExpectExec(`UPDATE "enquiries" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	reason := "incomplete address"
	err := repo.Decide(context.Background(), uuid.New(), entity.EnquiryDecision{
		Status:    entity.EnquiryRejected,
		Reason:    &reason,
		DecidedBy: uuid.New(),
		DecidedAt: time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddOrIncrementIsSingleUpsert(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCartRepository(db)

	customerID, cakeID, lineID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO "cart_lines" .+ ON CONFLICT \("customer_id","cake_id"\) DO UPDATE SET "quantity"=cart_lines\.quantity \+ EXCLUDED\.quantity`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT cart_lines\.\*, cakes\.name AS cake_name.+FROM "cart_lines" JOIN cakes ON cakes\.id = cart_lines\.cake_id WHERE cart_lines\.customer_id = \$1 AND cart_lines\.cake_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "cake_id", "quantity", "price", "created_at", "updated_at",
			"cake_name", "cake_images", "current_price",
		}).AddRow(
			lineID.String(), customerID.String(), cakeID.String(), int64(5), "12.50", now, now,
			"Red Velvet", "{https://img/1.jpg,https://img/2.jpg}", "14.00",
		))

	line, err := repo.AddOrIncrement(context.Background(), &entity.CartLine{
		CustomerID: customerID,
		CakeID:     cakeID,
		Quantity:   2,
		Price:      decimal.RequireFromString("14.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, lineID, line.ID)
	assert.Equal(t, 5, line.Quantity)
	assert.True(t, decimal.RequireFromString("12.50").Equal(line.Price), "first-add price is kept")
	assert.True(t, decimal.RequireFromString("14.00").Equal(line.CurrentPrice))
	assert.Equal(t, "Red Velvet", line.CakeName)
	assert.Equal(t, "https://img/1.jpg", line.CakeImage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_FindByIDNotFound(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`FROM "cart_lines" JOIN cakes`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	line, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, line)
	assert.ErrorIs(t, err, repository.ErrCartLineNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatusConflict(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), entity.OrderPending, entity.OrderCompleted)
	assert.ErrorIs(t, err, repository.ErrOrderStatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOrderWhenLinesFail(t *testing.T) {
	db, mock := dbMock(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_lines"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	order := &entity.Order{
		OrderNo:    "CH-20261019-0a1b2c3d",
		CustomerID: uuid.New(),
		Status:     entity.OrderPending,
		Total:      decimal.RequireFromString("25.00"),
		Items: []*entity.OrderLine{
			{CakeID: uuid.New(), CakeName: "Red Velvet", ShopID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("12.50")},
		},
	}

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.OrderRepo().Create(context.Background(), order)
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := dbMock(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "enquiries" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "shops"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	enquiryID := uuid.New()
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.EnquiryRepo().Decide(context.Background(), enquiryID, entity.EnquiryDecision{
			Status:    entity.EnquiryApproved,
			DecidedBy: uuid.New(),
			DecidedAt: time.Now(),
		}); err != nil {
			return err
		}

		return f.ShopRepo().Create(context.Background(), &entity.Shop{
			ShopDetails: entity.ShopDetails{ShopName: "Sweet Bloom", OwnerName: "Asha", Email: "a@x.com", Phone: "9999999999", Address: "12 MG Rd", City: "Pune"},
			Status:      entity.StatusActive,
			EnquiryID:   enquiryID,
		})
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackWhenShopInsertFails(t *testing.T) {
	db, mock := dbMock(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "enquiries" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "shops"`).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	enquiryID := uuid.New()
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.EnquiryRepo().Decide(context.Background(), enquiryID, entity.EnquiryDecision{
			Status:    entity.EnquiryApproved,
			DecidedBy: uuid.New(),
			DecidedAt: time.Now(),
		}); err != nil {
			return err
		}

		return f.ShopRepo().Create(context.Background(), &entity.Shop{Status: entity.StatusActive, EnquiryID: enquiryID})
	})
	assert.ErrorIs(t, err, repository.ErrShopExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnquiryRepository_CreateValueTooLong(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewEnquiryRepository(db)

	mock.ExpectExec(`INSERT INTO "enquiries"`).
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(100)"})

	err := repo.Create(context.Background(), &entity.Enquiry{Status: entity.EnquiryPending})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCakeRepository_UpdateRequiresActiveOwnedRow(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCakeRepository(db)

	mock.ExpectExec(`UPDATE "cakes" SET .+ WHERE id = \$\d+ AND shop_id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Cake{
		ID:       uuid.New(),
		ShopID:   uuid.New(),
		Name:     "Black Forest",
		Price:    decimal.RequireFromString("450"),
		Servings: 8,
		Status:   entity.StatusActive,
	})
	assert.ErrorIs(t, err, repository.ErrCakeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCakeRepository_FindByIDReportsSuspendedShop(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewCakeRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT cakes\.\*, COALESCE\(shops\.status = 'inactive', false\) AS shop_suspended FROM "cakes" ` +
		`LEFT JOIN shops ON shops\.admin_id = cakes\.shop_id WHERE cakes\.id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "status", "shop_suspended"}).
			AddRow(id.String(), "Black Forest", "450.00", "active", true))

	cake, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, cake.ID)
	assert.True(t, cake.IsActive())
	assert.True(t, cake.ShopSuspended)
	assert.False(t, cake.IsAvailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokedTokenRepository_ConsumeTwice(t *testing.T) {
	db, mock := dbMock(t)
	repo := NewRevokedTokenRepository(db)
	token := &entity.RevokedToken{TokenID: "reset-jti", SubjectID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute)}

	mock.ExpectExec(`INSERT INTO "revoked_tokens"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "revoked_tokens"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "revoked_tokens_pkey"})

	require.NoError(t, repo.Consume(context.Background(), token))
	assert.ErrorIs(t, repo.Consume(context.Background(), token), repository.ErrTokenConsumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
