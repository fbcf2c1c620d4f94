package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"trade-journal-go/internal/models"
)

// exportHeader is the canonical column order for exported files.
var exportHeader = []string{
	colSeq, colAsset, colSide, colDate, colQuantity,
	colEntryPrice, colExitPrice, colPointValue,
	colPoints, colResult, colStatus,
	colRegion, colStructure, colTrigger,
}

// Export writes all records as CSV. The caller passes the full record
// set: the display filter is never applied to exports.
func Export(w io.Writer, records []models.TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Seq),
			rec.Asset,
			rec.Side,
			rec.Date,
			strconv.Itoa(rec.Quantity),
			formatFloat(rec.EntryPrice),
			formatFloat(rec.ExitPrice),
			formatFloat(rec.PointValue),
			formatFloat(rec.Points),
			formatFloat(rec.Result),
			rec.Status,
			rec.Region,
			rec.Structure,
			rec.Trigger,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the dated export filename, e.g.
// Diario_Trade_28-02-2026.csv.
func Filename(now time.Time) string {
	return "Diario_Trade_" + now.Format("02-01-2006") + ".csv"
}

// formatFloat writes the shortest plain-decimal representation, which
// numfmt.Parse reads back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
