package coach

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"trade-journal-go/internal/i18n"
)

// Comment is one resolved coaching comment, tagged with the record it
// concerns.
type Comment struct {
	RecordID int64
	Text     string
}

// Advisor runs coaching requests without blocking the caller. Each
// request is tagged with the record identifier it concerns; a response
// that resolves after a newer request was made is dropped instead of
// overwriting the feedback panel with stale advice.
type Advisor struct {
	provider CommentProvider
	logger   *zap.Logger
	lang     string
	deliver  func(Comment)

	mu       sync.Mutex
	latestID int64
	wg       sync.WaitGroup
}

// NewAdvisor creates an advisor delivering resolved comments through the
// given callback.
func NewAdvisor(provider CommentProvider, logger *zap.Logger, lang string, deliver func(Comment)) *Advisor {
	return &Advisor{
		provider: provider,
		logger:   logger,
		lang:     lang,
		deliver:  deliver,
	}
}

// Request starts a coaching request for the given prompt and returns
// immediately. A failed request delivers the localized fallback string;
// it never propagates an error to the caller.
func (a *Advisor) Request(ctx context.Context, p Prompt) {
	a.mu.Lock()
	a.latestID = p.Record.ID
	a.mu.Unlock()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		text, err := a.provider.Comment(ctx, a.lang, p)
		if err != nil {
			a.logger.Error("Coaching request failed", zap.Int64("record_id", p.Record.ID), zap.Error(err))
			text = i18n.T(a.lang, "coach.fallback")
		}

		a.mu.Lock()
		stale := a.latestID != p.Record.ID
		a.mu.Unlock()
		if stale {
			a.logger.Debug("Dropping stale coaching comment", zap.Int64("record_id", p.Record.ID))
			return
		}

		a.deliver(Comment{RecordID: p.Record.ID, Text: text})
	}()
}

// Wait blocks until all in-flight requests have resolved or been dropped.
func (a *Advisor) Wait() {
	a.wg.Wait()
}
