// Package usecase contains the application use cases.
package usecase

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// logCategory is the log category used by board use cases.
const logCategory = "board"

// dispatch applies an action to the stored state and saves the result.
// It returns the state before and after the transition.
func dispatch(store domain.StateStore, logger domain.Logger, action domain.Action) (before, after domain.State, err error) {
	before, err = store.Load()
	if err != nil {
		return domain.State{}, domain.State{}, fmt.Errorf("load board: %w", err)
	}

	after = domain.Reduce(before, action)
	if err := store.Save(after); err != nil {
		return domain.State{}, domain.State{}, fmt.Errorf("save board: %w", err)
	}

	logger.Debug(logCategory, fmt.Sprintf("%s: %d -> %d tasks", action.Name(), before.PendingCount(), after.PendingCount()))
	return before, after, nil
}

// loggerOrNop returns logger, or a no-op logger when nil.
func loggerOrNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}
