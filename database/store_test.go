package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"vault/config"
	"vault/ledger"
	"vault/models"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := DB
	DB = gormDB
	return mock, func() {
		DB = oldDB
		sqlDB.Close()
	}
}

var goalColumns = []string{"id", "nombre", "objetivo", "actual", "color", "created_at"}

func TestStore_ListTransactions(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `movimientos` WHERE created_at BETWEEN (.+) ORDER BY created_at DESC").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "concepto", "monto", "tipo", "categoria", "created_at"}).
			AddRow("a", "Café", 3500, "Gasto", "comida", now).
			AddRow("b", "Sueldo", 100000, "Ingreso", "varios", now.Add(-time.Hour)))

	from, to := ledger.MonthRange(now)
	txs, err := NewStore(DB).ListTransactions(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Café", txs[0].Label)
	assert.Equal(t, int64(3500), txs[0].Amount)
	assert.True(t, txs[1].IsIncome())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListGoals(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `metas` ORDER BY created_at ASC").
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow("g1", "Viaje", 10000, 2500, "#10b981", time.Now()))

	goals, err := NewStore(DB).ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, int64(2500), goals[0].Current)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertTransaction(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `movimientos`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx := &models.Transaction{Label: "Café", Amount: 3500, Type: models.TipoGasto, Category: "comida"}
	require.NoError(t, NewStore(DB).InsertTransaction(context.Background(), tx, nil))
	assert.Len(t, tx.ID, 36)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertTransaction_AdjustsGoal(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `metas` WHERE id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow("g1", "Casa", 10000, 3000, "#10b981", time.Now()))
	mock.ExpectExec("INSERT INTO `movimientos`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 取出 5000，余额 3000，结果截断为 0
	mock.ExpectExec("UPDATE `metas` SET `actual`=\\? WHERE id = \\?").
		WithArgs(int64(0), "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx := &models.Transaction{Label: "📤 Retiro: Emergencia", Amount: 5000, Type: models.TipoIngreso, Category: models.CategorySavings}
	adj := &ledger.GoalAdjustment{GoalID: "g1", Amount: 5000, Withdrawal: true}
	require.NoError(t, NewStore(DB).InsertTransaction(context.Background(), tx, adj))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertTransaction_MissingGoalRollsBack(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `metas` WHERE id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(goalColumns))
	mock.ExpectRollback()

	tx := &models.Transaction{Label: "✨ Ahorro: x", Amount: 100, Type: models.TipoGasto, Category: models.CategorySavings}
	err := NewStore(DB).InsertTransaction(context.Background(), tx, &ledger.GoalAdjustment{GoalID: "missing", Amount: 100})
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertTransaction_UpdateFailureRollsBack(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `metas` WHERE id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow("g1", "Casa", 10000, 0, "#10b981", time.Now()))
	mock.ExpectExec("INSERT INTO `movimientos`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `metas`").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	tx := &models.Transaction{Label: "✨ Ahorro: x", Amount: 100, Type: models.TipoGasto, Category: models.CategorySavings}
	err := NewStore(DB).InsertTransaction(context.Background(), tx, &ledger.GoalAdjustment{GoalID: "g1", Amount: 100})
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertGoal(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `metas`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	g := &models.Goal{Name: "Viaje", Target: 10000, Color: models.DefaultGoalColor}
	require.NoError(t, NewStore(DB).InsertGoal(context.Background(), g))
	assert.NotEmpty(t, g.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteTransaction(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `movimientos` WHERE id = \\?").
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `movimientos` WHERE id = \\?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	store := NewStore(DB)
	require.NoError(t, store.DeleteTransaction(context.Background(), "a"))
	assert.ErrorIs(t, store.DeleteTransaction(context.Background(), "missing"), ledger.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDialector(t *testing.T) {
	d, err := dialector(config.DatabaseConfig{Driver: "mysql", Host: "h", Port: "3306"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = dialector(config.DatabaseConfig{Driver: "postgres", Host: "h", Port: "5432"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "memory"}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}
