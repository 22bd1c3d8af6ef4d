package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/client/sync"
)

// RunPending lists pending mutations, optionally filtered by shipment.
func RunPending(ctx context.Context, args []string, svc sync.Service) error {
	shipmentID := ""
	if len(args) > 0 {
		shipmentID = args[0]
	}

	mutations, err := svc.ListPendingMutations(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("failed to list pending mutations: %w", err)
	}

	fmt.Println("=== Pending Changes ===")
	fmt.Println()

	if len(mutations) == 0 {
		fmt.Println("No pending changes.")
		return nil
	}

	fmt.Printf("Found %d pending change(s):\n", len(mutations))
	fmt.Println()

	for i, m := range mutations {
		fmt.Printf("%d. %s\n", i+1, m.ID)
		fmt.Printf("   Kind:     %s\n", m.Kind)
		fmt.Printf("   Shipment: %s\n", m.ShipmentID)
		if m.LineID != "" {
			fmt.Printf("   Line:     %s\n", m.LineID)
		}
		fmt.Printf("   Status:   %s\n", statusBadge(m.Status))
		fmt.Printf("   Queued:   %s\n", m.CreatedAt.Format(time.RFC3339))
		if m.Attempts > 0 {
			fmt.Printf("   Attempts: %d\n", m.Attempts)
		}
		if m.LastError != "" {
			fmt.Printf("   Error:    %s\n", m.LastError)
		}
		if m.ConflictDetail != "" {
			fmt.Printf("   Conflict: %s\n", m.ConflictDetail)
		}
		fmt.Println()
	}

	fmt.Println("Use 'fieldsync discard <mutation-id>' to drop a change.")

	return nil
}

// RunDiscard drops one queued mutation by explicit user decision.
func RunDiscard(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("missing mutation ID. Usage: fieldsync discard <mutation-id>")
	}
	mutationID := args[0]

	if err := svc.DiscardMutation(ctx, mutationID); err != nil {
		switch {
		case errors.Is(err, storage.ErrMutationNotFound):
			return fmt.Errorf("mutation %s not found", mutationID)
		case errors.Is(err, storage.ErrMutationSyncing):
			return fmt.Errorf("mutation %s is being sent right now, try again in a moment", mutationID)
		}
		return fmt.Errorf("failed to discard mutation: %w", err)
	}

	fmt.Printf("✓ Discarded %s\n", mutationID)
	return nil
}
