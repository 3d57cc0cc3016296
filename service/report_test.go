package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"vault/config"
	"vault/database"
	"vault/ledger"
	"vault/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type recordingSender struct {
	enabled    bool
	err        error
	to         string
	report     *ledger.MonthlyReport
	attachment *Attachment
}

func (s *recordingSender) Enabled() bool { return s.enabled }

func (s *recordingSender) SendMonthlyReport(to string, r *ledger.MonthlyReport, a *Attachment) error {
	s.to, s.report, s.attachment = to, r, a
	return s.err
}

func seededStore(t *testing.T) ledger.Store {
	t.Helper()
	store := database.NewMemoryStore()
	ctx := context.Background()
	dec := time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC)
	jan := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.InsertTransaction(ctx, &models.Transaction{Label: "Sueldo", Amount: 100000, Type: models.TipoIngreso, Category: "varios", CreatedAt: dec}, nil))
	require.NoError(t, store.InsertTransaction(ctx, &models.Transaction{Label: "Cena", Amount: 20000, Type: models.TipoGasto, Category: "comida", CreatedAt: dec.Add(time.Hour)}, nil))
	require.NoError(t, store.InsertTransaction(ctx, &models.Transaction{Label: "Bus", Amount: 800, Type: models.TipoGasto, Category: "transporte", CreatedAt: jan}, nil))
	return store
}

func TestReporter_SendPreviousMonth(t *testing.T) {
	sender := &recordingSender{enabled: true}
	r := NewReporter(seededStore(t), sender, "me@example.com", time.UTC)
	r.now = func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) }

	require.NoError(t, r.SendPreviousMonth(context.Background()))
	require.NotNil(t, sender.report)
	assert.Equal(t, "me@example.com", sender.to)
	assert.Equal(t, "2023-12", sender.report.Label)
	assert.Equal(t, int64(80000), sender.report.Summary.Balance)
	assert.Len(t, sender.report.Transactions, 2)

	require.NotNil(t, sender.attachment)
	assert.Equal(t, "vault_2023-12.xlsx", sender.attachment.Name)
	f, err := excelize.OpenReader(bytes.NewReader(sender.attachment.Data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Movimientos", "Resumen"}, f.GetSheetList())
	v, err := f.GetCellValue("Movimientos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Cena", v)
}

func TestReporter_Errors(t *testing.T) {
	r := NewReporter(seededStore(t), &recordingSender{enabled: false}, "me@example.com", time.UTC)
	_, err := r.Send(context.Background(), time.Now())
	assert.Error(t, err)

	failing := &recordingSender{enabled: true, err: errors.New("smtp down")}
	r = NewReporter(seededStore(t), failing, "me@example.com", time.UTC)
	_, err = r.Send(context.Background(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.ErrorContains(t, err, "smtp down")
}

func TestStartScheduler(t *testing.T) {
	r := NewReporter(database.NewMemoryStore(), &recordingSender{enabled: true}, "", time.UTC)

	c, err := StartScheduler(config.ReportConfig{Enabled: false, Schedule: "@monthly"}, r)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = StartScheduler(config.ReportConfig{Enabled: true, Schedule: "every tuesday"}, r)
	assert.Error(t, err)

	c, err = StartScheduler(config.ReportConfig{Enabled: true, Schedule: "@monthly"}, r)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(sampleReport(), time.UTC)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Resumen", "B4")
	require.NoError(t, err)
	assert.Equal(t, "60000", v)

	total, err := f.GetCellValue("Movimientos", "D4")
	require.NoError(t, err)
	assert.Equal(t, "2 movimientos", total)

	assert.Equal(t, "Vivienda", CategoryName("vivienda"))
	assert.Equal(t, "Ahorro", CategoryName(models.CategorySavings))
	assert.Equal(t, "otro", CategoryName("otro"))
}
