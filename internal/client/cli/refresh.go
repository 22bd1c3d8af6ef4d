package cli

import (
	"context"
	"fmt"

	"github.com/mobo-open-source/fieldsync/internal/client/sync"
)

// RunRefresh pulls fresh snapshots from the server into the local cache.
// "fieldsync refresh reference" pulls the reference data sets; any other
// argument is treated as a shipment ID and pulls the header plus its lines.
func RunRefresh(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fieldsync refresh <shipment-id|reference>")
	}

	if !svc.IsOnline() {
		return fmt.Errorf("cannot refresh while offline")
	}

	if args[0] == "reference" {
		fmt.Println("Pulling reference data (contacts, catalog, operators, reverse shipments)...")
		if err := svc.RefreshReference(ctx); err != nil {
			return fmt.Errorf("reference refresh failed: %w", err)
		}
		fmt.Println("✓ Reference data refreshed")
		return nil
	}

	shipmentID := args[0]
	fmt.Printf("Pulling shipment %s...\n", shipmentID)

	shipment, err := svc.RefreshShipment(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("shipment refresh failed: %w", err)
	}

	lines, err := svc.RefreshLines(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("line refresh failed: %w", err)
	}

	fmt.Printf("✓ Refreshed shipment %s (state %s, %d line(s))\n", shipment.ID, shipment.State, len(lines))

	return nil
}
