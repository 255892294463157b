package commands

import (
	"context"
	"fmt"

	"ppw/internal/domain"
	"ppw/internal/ports"
)

// DefaultHistoryLimit bounds ListHistoryCommand when no limit is given
const DefaultHistoryLimit = 20

// ListHistoryCommand lists the most recent pipeline runs
type ListHistoryCommand struct {
	history ports.RunHistory
	Limit   int
}

// NewListHistoryCommand creates a new ListHistoryCommand
func NewListHistoryCommand(history ports.RunHistory, limit int) *ListHistoryCommand {
	return &ListHistoryCommand{history: history, Limit: limit}
}

// Execute runs the list history command
func (c *ListHistoryCommand) Execute(ctx context.Context) ([]domain.RunRecord, error) {
	if c.history == nil {
		return nil, fmt.Errorf("run history is disabled: set --history or PPW_HISTORY_DB")
	}
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	records, err := c.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return records, nil
}
