// Package journal owns the application state: the record list, the
// window filter and the category tag sets. All mutation goes through the
// controller, which hands back an immutable snapshot with the derived
// statistics recomputed on demand.
package journal

import (
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"trade-journal-go/internal/csvio"
	"trade-journal-go/internal/i18n"
	"trade-journal-go/internal/models"
	"trade-journal-go/internal/numfmt"
	"trade-journal-go/internal/stats"
)

var (
	// ErrInvalidInput marks a form submission that is dropped without
	// changing any state (non-numeric or non-positive quantity).
	ErrInvalidInput = errors.New("invalid trade input")

	// ErrNotFound marks an update or delete for an unknown record.
	ErrNotFound = errors.New("trade record not found")
)

// Input is one raw form submission. Numeric fields arrive as strings in
// either locale convention.
type Input struct {
	Asset      string
	Side       string
	Date       string
	Quantity   string
	EntryPrice string
	ExitPrice  string
	PointValue string
	Region     string
	Structure  string
	Trigger    string
}

// Snapshot is an immutable view of the journal after an operation.
type Snapshot struct {
	Records  []models.TradeRecord
	Window   stats.Window
	Report   stats.Report
	Regions  []string
	Triggers []string
}

// Journal is the application state controller.
type Journal struct {
	logger   *zap.Logger
	lang     string
	records  []models.TradeRecord
	window   stats.Window
	regions  *models.TagSet
	triggers *models.TagSet
	nextID   int64
	now      func() time.Time
}

// New creates an empty journal with the locale's default tag seeds.
func New(lang string, logger *zap.Logger) *Journal {
	return &Journal{
		logger:   logger,
		lang:     lang,
		window:   stats.WindowAll,
		regions:  models.NewTagSet(i18n.DefaultRegions(lang)...),
		triggers: models.NewTagSet(i18n.DefaultTriggers(lang)...),
		nextID:   1,
		now:      time.Now,
	}
}

// AddRecord validates the input, assigns the next identifier and display
// sequence number, derives points/result/status and grows the tag sets.
// Invalid input returns ErrInvalidInput and mutates nothing.
func (j *Journal) AddRecord(in Input) (Snapshot, error) {
	rec, err := j.coerce(in)
	if err != nil {
		return j.Snapshot(), err
	}

	rec.ID = j.nextID
	rec.Seq = len(j.records) + 1
	j.nextID++
	j.records = append(j.records, rec)
	j.growTags(rec)

	j.logger.Info("Trade record added",
		zap.Int64("id", rec.ID),
		zap.String("asset", rec.Asset),
		zap.Float64("result", rec.Result))
	return j.Snapshot(), nil
}

// UpdateRecord replaces every field of the identified record except its
// identifier and sequence number, then rederives the computed fields.
func (j *Journal) UpdateRecord(id int64, in Input) (Snapshot, error) {
	idx := j.indexOf(id)
	if idx < 0 {
		return j.Snapshot(), ErrNotFound
	}
	rec, err := j.coerce(in)
	if err != nil {
		return j.Snapshot(), err
	}

	rec.ID = j.records[idx].ID
	rec.Seq = j.records[idx].Seq
	j.records[idx] = rec
	j.growTags(rec)

	j.logger.Info("Trade record updated", zap.Int64("id", rec.ID))
	return j.Snapshot(), nil
}

// DeleteRecord removes the identified record and renumbers the remaining
// records to a contiguous 1..N sequence, preserving relative order.
func (j *Journal) DeleteRecord(id int64) (Snapshot, error) {
	idx := j.indexOf(id)
	if idx < 0 {
		return j.Snapshot(), ErrNotFound
	}
	j.records = append(j.records[:idx], j.records[idx+1:]...)

	sort.SliceStable(j.records, func(a, b int) bool {
		return j.records[a].Seq < j.records[b].Seq
	})
	for i := range j.records {
		j.records[i].Seq = i + 1
	}

	j.logger.Info("Trade record deleted", zap.Int64("id", id), zap.Int("remaining", len(j.records)))
	return j.Snapshot(), nil
}

// SetFilter switches the active statistics window.
func (j *Journal) SetFilter(w stats.Window) Snapshot {
	j.window = w
	return j.Snapshot()
}

// ImportCSV merges a CSV file into the journal. The merge is atomic:
// either every row imports or none does. Imported rows keep the sequence
// numbers from the file; the merged set is sorted by sequence but not
// renumbered.
func (j *Journal) ImportCSV(r io.Reader) (int, Snapshot, error) {
	imported, err := csvio.Import(r, j.nextID, j.now())
	if err != nil {
		j.logger.Error("CSV import failed", zap.Error(err))
		return 0, j.Snapshot(), err
	}

	j.records = append(j.records, imported...)
	sort.SliceStable(j.records, func(a, b int) bool {
		return j.records[a].Seq < j.records[b].Seq
	})
	for _, rec := range imported {
		if rec.ID >= j.nextID {
			j.nextID = rec.ID + 1
		}
		j.growTags(rec)
	}

	j.logger.Info("CSV import complete", zap.Int("imported", len(imported)))
	return len(imported), j.Snapshot(), nil
}

// ExportCSV writes the full unfiltered record set.
func (j *Journal) ExportCSV(w io.Writer) error {
	return csvio.Export(w, j.records)
}

// ExportFilename returns the dated filename for a fresh export.
func (j *Journal) ExportFilename() string {
	return csvio.Filename(j.now())
}

// Snapshot returns a copy of the records plus the aggregates for the
// active window.
func (j *Journal) Snapshot() Snapshot {
	records := make([]models.TradeRecord, len(j.records))
	copy(records, j.records)
	return Snapshot{
		Records:  records,
		Window:   j.window,
		Report:   stats.Aggregate(j.records, j.window, j.now()),
		Regions:  j.regions.Values(),
		Triggers: j.triggers.Values(),
	}
}

// Language returns the journal's display language.
func (j *Journal) Language() string {
	return j.lang
}

func (j *Journal) indexOf(id int64) int {
	for i := range j.records {
		if j.records[i].ID == id {
			return i
		}
	}
	return -1
}

// coerce turns a raw form submission into a record with derived fields.
// The quantity is strict: non-numeric or non-positive input invalidates
// the submission. Prices coerce silently, unparseable values become 0.
func (j *Journal) coerce(in Input) (models.TradeRecord, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || qty <= 0 {
		return models.TradeRecord{}, ErrInvalidInput
	}

	rec := models.TradeRecord{
		Asset:      strings.TrimSpace(in.Asset),
		Side:       models.ParseSide(in.Side),
		Quantity:   qty,
		EntryPrice: numfmt.Parse(in.EntryPrice),
		ExitPrice:  numfmt.Parse(in.ExitPrice),
		PointValue: numfmt.Parse(in.PointValue),
		Region:     strings.TrimSpace(in.Region),
		Structure:  strings.TrimSpace(in.Structure),
		Trigger:    strings.TrimSpace(in.Trigger),
	}

	if models.ValidDateShape(strings.TrimSpace(in.Date)) {
		rec.Date = strings.TrimSpace(in.Date)
	} else {
		rec.Date = j.now().UTC().Format(models.DateLayout)
	}

	rec.Recompute()
	return rec, nil
}

func (j *Journal) growTags(rec models.TradeRecord) {
	j.regions.Add(rec.Region)
	j.triggers.Add(rec.Trigger)
}
