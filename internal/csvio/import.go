// Package csvio reads and writes the journal's CSV interchange format,
// normalizing the loosely-specified header spellings found in exported
// and hand-made files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/numfmt"
)

// Canonical column names. Export writes exactly these; import resolves
// aliased headers onto them.
const (
	colSeq        = "seq"
	colAsset      = "asset"
	colSide       = "side"
	colDate       = "date"
	colQuantity   = "quantity"
	colEntryPrice = "entry_price"
	colExitPrice  = "exit_price"
	colPointValue = "point_value"
	colPoints     = "points"
	colResult     = "result"
	colStatus     = "status"
	colRegion     = "region"
	colStructure  = "structure"
	colTrigger    = "trigger"
)

// headerAliases maps normalized header spellings (English and Portuguese)
// to canonical column names. Headers that resolve to nothing are dropped.
var headerAliases = map[string]string{
	"seq": colSeq, "sequencia": colSeq, "sequência": colSeq,
	"num": colSeq, "numero": colSeq, "número": colSeq, "nº": colSeq, "#": colSeq,

	"asset": colAsset, "ativo": colAsset, "symbol": colAsset,
	"simbolo": colAsset, "símbolo": colAsset, "papel": colAsset,

	"side": colSide, "lado": colSide, "tipo": colSide,
	"direction": colSide, "direcao": colSide, "direção": colSide,

	"date": colDate, "data": colDate, "dia": colDate,

	"quantity": colQuantity, "quantidade": colQuantity, "qty": colQuantity,
	"qtd": colQuantity, "lots": colQuantity, "lotes": colQuantity,
	"contratos": colQuantity,

	"entryprice": colEntryPrice, "entry": colEntryPrice, "entrada": colEntryPrice,
	"precoentrada": colEntryPrice, "preçoentrada": colEntryPrice,
	"precodeentrada": colEntryPrice,

	"exitprice": colExitPrice, "exit": colExitPrice, "saida": colExitPrice,
	"saída": colExitPrice, "precosaida": colExitPrice, "preçosaída": colExitPrice,
	"precodesaida": colExitPrice,

	"pointvalue": colPointValue, "valorponto": colPointValue,
	"valordoponto": colPointValue, "valorporponto": colPointValue,

	"points": colPoints, "pontos": colPoints, "pts": colPoints,

	"result": colResult, "resultado": colResult, "pnl": colResult,
	"lucro": colResult,

	"status": colStatus, "situacao": colStatus, "situação": colStatus,

	"region": colRegion, "regiao": colRegion, "região": colRegion,

	"structure": colStructure, "estrutura": colStructure,

	"trigger": colTrigger, "gatilho": colTrigger,
}

// normalizeHeader lowercases a header and strips whitespace and
// underscores before the alias lookup.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "\ufeff") // BOM on the first header of some exports
	var b strings.Builder
	for _, r := range h {
		switch r {
		case ' ', '\t', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Import reads a CSV file into trade records. The first row must be a
// header row. Records receive fresh identifiers starting at nextID,
// offset by row index so a batch never collides with itself.
//
// A non-numeric sequence number or quantity aborts the whole import with
// an error naming the offending row (1-based, counting the header row);
// no records are returned in that case.
func Import(r io.Reader, nextID int64, now time.Time) ([]models.TradeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Map canonical column name -> position in the row.
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if canonical, ok := headerAliases[normalizeHeader(h)]; ok {
			cols[canonical] = i
		}
	}

	field := func(row []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var records []models.TradeRecord
	rowNum := 1 // header row
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rowNum++

		seqStr, _ := field(row, colSeq)
		seq, err := strconv.Atoi(seqStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid sequence number %q", rowNum, seqStr)
		}
		qtyStr, _ := field(row, colQuantity)
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q", rowNum, qtyStr)
		}

		rec := models.TradeRecord{
			ID:       nextID + int64(rowNum-2),
			Seq:      seq,
			Quantity: qty,
		}
		rec.Asset, _ = field(row, colAsset)
		sideStr, _ := field(row, colSide)
		rec.Side = models.ParseSide(sideStr)
		rec.Region, _ = field(row, colRegion)
		rec.Structure, _ = field(row, colStructure)
		rec.Trigger, _ = field(row, colTrigger)

		dateStr, _ := field(row, colDate)
		if models.ValidDateShape(dateStr) {
			rec.Date = dateStr
		} else {
			rec.Date = now.UTC().Format(models.DateLayout)
		}

		entryStr, _ := field(row, colEntryPrice)
		exitStr, _ := field(row, colExitPrice)
		valueStr, _ := field(row, colPointValue)
		rec.EntryPrice = numfmt.Parse(entryStr)
		rec.ExitPrice = numfmt.Parse(exitStr)
		rec.PointValue = numfmt.Parse(valueStr)

		// The file's own points/result are trusted when present;
		// otherwise they are rederived from the prices. The status is
		// always functionally determined by the result.
		rec.Recompute()
		if v, ok := field(row, colPoints); ok && v != "" {
			rec.Points = numfmt.Parse(v)
		}
		if v, ok := field(row, colResult); ok && v != "" {
			rec.Result = numfmt.Parse(v)
		}
		rec.Status = models.StatusForResult(rec.Result)

		records = append(records, rec)
	}

	return records, nil
}
