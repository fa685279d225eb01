package handler

import (
	"context"
	"errors"
)

// ErrNoRunHandled means no pending journal run was available to execute.
var ErrNoRunHandled = errors.New("no journal run handled")

func (h *JournalHandler) JournalExecution(ctx context.Context) error {
	acquired, logID, err := h.Usecase.TryAcquireRun(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		return ErrNoRunHandled
	}

	defer h.Usecase.ReleaseRun(ctx, logID)

	return h.Usecase.ProcessJournalJob(ctx, logID)
}
