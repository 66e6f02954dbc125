package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts the application and blocks until a signal arrives or a
// component requests shutdown.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start customer system: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop customer system: %w", err)
	}
	return nil
}
