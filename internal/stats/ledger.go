// Package stats accumulates per-user, per-quiz performance totals across
// quiz attempts.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/store"
)

// Entry holds the running aggregates for one user on one quiz.
//
// AverageTimeSeconds is derived (TotalTimeSeconds / Attempts) and recomputed
// on every merge; it is stored for document readability, not as independent
// truth. Attempts is at least 1 whenever an entry exists.
type Entry struct {
	TotalTimeSeconds   float64 `json:"total_time"`
	Attempts           int     `json:"attempts"`
	CorrectAnswers     int     `json:"correct_answers"`
	AverageTimeSeconds float64 `json:"average_time"`
}

// Document maps username → quiz ID → Entry.
type Document map[string]map[string]Entry

// AttemptResult is the outcome of one finished quiz run.
type AttemptResult struct {
	CorrectCount   int
	TotalQuestions int
	Elapsed        time.Duration
}

// Ledger merges quiz attempts into the statistics document.
type Ledger struct {
	store *store.Store[Document]
	log   logging.Logger
}

func New(s *store.Store[Document], log logging.Logger) *Ledger {
	return &Ledger{store: s, log: log.With("component", "stats")}
}

// RecordAttempt merges one attempt into the running aggregates for
// (username, quizID) and returns the updated entry. Every call is a new
// attempt: the merge is additive, never idempotent, with no cap and no
// expiry.
func (l *Ledger) RecordAttempt(ctx context.Context, username, quizID string, result AttemptResult) (Entry, error) {
	doc, err := l.store.Load(ctx, Document{})
	if err != nil {
		return Entry{}, fmt.Errorf("load statistics: %w", err)
	}

	// The nil check also covers a hand-edited document where a user's
	// entry was nulled out.
	if doc[username] == nil {
		doc[username] = map[string]Entry{}
	}

	entry := doc[username][quizID]
	entry.TotalTimeSeconds += result.Elapsed.Seconds()
	entry.Attempts++
	entry.CorrectAnswers += result.CorrectCount
	entry.AverageTimeSeconds = entry.TotalTimeSeconds / float64(entry.Attempts)
	doc[username][quizID] = entry

	if err := l.store.Save(ctx, doc); err != nil {
		return Entry{}, fmt.Errorf("save statistics: %w", err)
	}

	l.log.Info(ctx, "attempt recorded",
		"username", username,
		"quiz", quizID,
		"attempts", entry.Attempts,
		"correct", result.CorrectCount,
		"of", result.TotalQuestions,
	)
	return entry, nil
}

// ForUser returns the quiz→entry mapping for username, possibly empty.
func (l *Ledger) ForUser(ctx context.Context, username string) (map[string]Entry, error) {
	doc, err := l.store.Load(ctx, Document{})
	if err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}

	entries, ok := doc[username]
	if !ok {
		return map[string]Entry{}, nil
	}
	return entries, nil
}

// All returns the whole statistics document. The ledger imposes no access
// control; restricting this to admins is the session's job.
func (l *Ledger) All(ctx context.Context) (Document, error) {
	doc, err := l.store.Load(ctx, Document{})
	if err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return doc, nil
}
