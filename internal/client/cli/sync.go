package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobo-open-source/fieldsync/internal/client/sync"
)

// RunSync drains the pending queue once and prints the pass summary.
func RunSync(ctx context.Context, svc sync.Service) error {
	fmt.Println("=== Synchronization ===")
	fmt.Println()

	if !svc.IsOnline() {
		fmt.Println("⚠️  Currently offline. Changes stay queued until the server is reachable.")
		return nil
	}

	fmt.Println("Replaying pending changes...")
	fmt.Println()

	result, err := svc.DrainQueue(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrDrainInProgress) {
			fmt.Println("Another sync pass is already running.")
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Attempted == 0 {
		fmt.Println("✓ Nothing to sync, local data is up to date.")
		return nil
	}

	fmt.Println("✓ Sync pass completed")
	fmt.Println()
	fmt.Printf("Attempted: %d\n", result.Attempted)
	fmt.Printf("Succeeded: %d\n", result.Succeeded)
	if result.Failed > 0 {
		fmt.Printf("Failed:    %d (will retry)\n", result.Failed)
	}
	if result.Conflicts > 0 {
		fmt.Printf("Conflicts: %d\n", result.Conflicts)
		fmt.Println()
		fmt.Println("⚠️  Conflicted changes need a decision. Run 'fieldsync pending' to inspect.")
	}

	return nil
}
