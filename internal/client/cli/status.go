package cli

import (
	"context"
	"fmt"

	"github.com/mobo-open-source/fieldsync/internal/client/sync"
	"github.com/mobo-open-source/fieldsync/internal/models"
)

// RunStatus prints the connectivity belief and a pending queue summary.
func RunStatus(ctx context.Context, svc sync.Service) error {
	fmt.Println("=== Sync Status ===")
	fmt.Println()

	if svc.IsOnline() {
		fmt.Println("Connectivity: online")
	} else {
		fmt.Println("Connectivity: offline")
	}

	// Пустой shipmentID возвращает всю очередь
	mutations, err := svc.ListPendingMutations(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list pending mutations: %w", err)
	}

	fmt.Println()
	if len(mutations) == 0 {
		fmt.Println("✓ No pending changes, local data is in sync")
		return nil
	}

	var conflicts int
	for _, m := range mutations {
		if m.Status == models.MutationStatusConflict {
			conflicts++
		}
	}

	fmt.Printf("⚠️  Pending sync: %d change(s) waiting\n", len(mutations))
	if conflicts > 0 {
		fmt.Printf("⚠️  Conflicts:    %d change(s) need a decision\n", conflicts)
		fmt.Println()
		fmt.Println("Run 'fieldsync pending' to inspect them.")
		return nil
	}

	fmt.Println()
	fmt.Println("Run 'fieldsync sync' to push them to the server.")

	return nil
}
