package csvio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal-go/internal/models"
)

func sampleRecords() []models.TradeRecord {
	a := models.TradeRecord{
		ID: 1, Seq: 1, Asset: "WINQ25", Side: models.SideBuy, Date: "2025-07-14",
		Quantity: 2, EntryPrice: 135000, ExitPrice: 135150, PointValue: 0.2,
		Region: "Suporte", Structure: "Tendência de alta", Trigger: "Pullback",
	}
	a.Recompute()
	b := models.TradeRecord{
		ID: 2, Seq: 2, Asset: "WDOQ25", Side: models.SideSell, Date: "2025-07-15",
		Quantity: 1, EntryPrice: 5500.5, ExitPrice: 5503, PointValue: 10,
		Region: "Topo", Structure: "Lateral", Trigger: "Rompimento",
	}
	b.Recompute()
	return []models.TradeRecord{a, b}
}

func TestExportHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"seq,asset,side,date,quantity,entry_price,exit_price,point_value,points,result,status,region,structure,trigger",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,WINQ25,BUY,2025-07-14,2,"))
}

func TestExportImportRoundTrip(t *testing.T) {
	original := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))

	imported, err := Import(&buf, 100, time.Now())
	require.NoError(t, err)
	require.Len(t, imported, len(original))

	for i, want := range original {
		got := imported[i]
		assert.Equal(t, want.Seq, got.Seq)
		assert.Equal(t, want.Asset, got.Asset)
		assert.Equal(t, want.Side, got.Side)
		assert.Equal(t, want.Date, got.Date)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.InDelta(t, want.EntryPrice, got.EntryPrice, 1e-9)
		assert.InDelta(t, want.ExitPrice, got.ExitPrice, 1e-9)
		assert.InDelta(t, want.PointValue, got.PointValue, 1e-9)
		assert.InDelta(t, want.Points, got.Points, 1e-9)
		assert.InDelta(t, want.Result, got.Result, 1e-9)
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.Region, got.Region)
		assert.Equal(t, want.Structure, got.Structure)
		assert.Equal(t, want.Trigger, got.Trigger)
		// Identifiers are freshly assigned on import.
		assert.NotEqual(t, want.ID, got.ID)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Diario_Trade_16-07-2025.csv", Filename(now))
}
