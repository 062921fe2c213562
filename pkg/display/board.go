package display

import (
	"sync"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// Board is an in-memory error display. Every Show replaces what was shown
// before, so stale messages never survive a resubmission.
type Board struct {
	mu     sync.RWMutex
	issues []validation.Issue
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Show replaces the displayed messages with issues.
func (b *Board) Show(issues []validation.Issue) {
	b.mu.Lock()
	b.issues = append([]validation.Issue(nil), issues...)
	b.mu.Unlock()
}

// Issues returns a copy of the displayed issues.
func (b *Board) Issues() []validation.Issue {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]validation.Issue(nil), b.issues...)
}

// Message returns the message displayed next to field, or "".
func (b *Board) Message(field model.FieldName) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, issue := range b.issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

// Messages returns every displayed message in order.
func (b *Board) Messages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(b.issues))
	for _, issue := range b.issues {
		out = append(out, issue.Message)
	}
	return out
}
