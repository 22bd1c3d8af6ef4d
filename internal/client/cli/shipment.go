package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/client/sync"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

// RunShow prints the effective (cache + pending overlay) state of a shipment.
func RunShow(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("missing shipment ID. Usage: fieldsync show <shipment-id>")
	}
	shipmentID := args[0]

	shipment, err := svc.GetCachedShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("shipment %s is not cached. Run 'fieldsync refresh %s' first", shipmentID, shipmentID)
		}
		return fmt.Errorf("failed to read cached shipment: %w", err)
	}

	fmt.Printf("=== Shipment %s ===\n", shipment.ID)
	fmt.Println()
	fmt.Printf("Reference:   %s\n", shipment.Reference)
	fmt.Printf("State:       %s\n", shipment.State)
	fmt.Printf("Origin:      %s\n", shipment.Origin)
	fmt.Printf("Destination: %s\n", shipment.Destination)
	if shipment.ContactID != "" {
		fmt.Printf("Contact:     %s\n", shipment.ContactID)
	}
	if shipment.OperatorID != "" {
		fmt.Printf("Operator:    %s\n", shipment.OperatorID)
	}
	if !shipment.ScheduledAt.IsZero() {
		fmt.Printf("Scheduled:   %s\n", shipment.ScheduledAt.Format(time.RFC3339))
	}
	if shipment.Note != "" {
		fmt.Printf("Note:        %s\n", shipment.Note)
	}
	if shipment.PendingSync {
		fmt.Println()
		fmt.Println("⚠️  Shown with local changes not yet confirmed by the server.")
	}

	lines, err := svc.GetCachedLines(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("failed to read cached lines: %w", err)
	}

	fmt.Println()
	if len(lines) == 0 {
		fmt.Println("No lines.")
		return nil
	}

	fmt.Printf("Lines (%d):\n", len(lines))
	for i, line := range lines {
		badge := ""
		if line.PendingSync {
			badge = "  [pending]"
		}
		fmt.Printf("%d. %s  %s x%.2f %s%s\n", i+1, line.ID, line.Description, line.Quantity, line.Unit, badge)
		if line.ProductID != "" {
			fmt.Printf("   Product: %s\n", line.ProductID)
		}
	}

	return nil
}

// RunValidate requests shipment validation.
func RunValidate(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("missing shipment ID. Usage: fieldsync validate <shipment-id>")
	}
	shipmentID := args[0]

	result, err := svc.RequestValidate(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("validate failed: %w", err)
	}

	return printRequestResult("Validation", shipmentID, result)
}

// RunCancel requests shipment cancellation.
func RunCancel(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("missing shipment ID. Usage: fieldsync cancel <shipment-id>")
	}
	shipmentID := args[0]

	result, err := svc.RequestCancel(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("cancel failed: %w", err)
	}

	return printRequestResult("Cancellation", shipmentID, result)
}

// RunEdit applies a header field diff.
func RunEdit(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldsync edit <shipment-id> <field=value>...")
	}
	shipmentID := args[0]

	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}

	result, err := svc.RequestHeaderUpdate(ctx, shipmentID, fields)
	if err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	return printRequestResult("Header update", shipmentID, result)
}

// RunLine dispatches line subcommands: add, update, delete.
func RunLine(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) == 0 {
		return fmt.Errorf("missing line subcommand. Usage: fieldsync line <add|update|delete> ...")
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: fieldsync line add <shipment-id> <field=value>...")
		}
		fields, err := parseFields(args[2:])
		if err != nil {
			return err
		}
		// lineID генерируется координатором
		result, err := svc.RequestLineAdd(ctx, args[1], "", fields)
		if err != nil {
			return fmt.Errorf("line add failed: %w", err)
		}
		return printRequestResult("Line add", args[1], result)

	case "update":
		if len(args) < 4 {
			return fmt.Errorf("usage: fieldsync line update <shipment-id> <line-id> <field=value>...")
		}
		fields, err := parseFields(args[3:])
		if err != nil {
			return err
		}
		result, err := svc.RequestLineUpdate(ctx, args[1], args[2], fields)
		if err != nil {
			return fmt.Errorf("line update failed: %w", err)
		}
		return printRequestResult("Line update", args[1], result)

	case "delete":
		if len(args) < 3 {
			return fmt.Errorf("usage: fieldsync line delete <shipment-id> <line-id>")
		}
		result, err := svc.RequestLineDelete(ctx, args[1], args[2])
		if err != nil {
			return fmt.Errorf("line delete failed: %w", err)
		}
		return printRequestResult("Line delete", args[1], result)

	default:
		return fmt.Errorf("unknown line subcommand: %s. Use: add, update or delete", args[0])
	}
}

// RunResolve forwards the user's choice for a pending decision point.
func RunResolve(ctx context.Context, args []string, svc sync.Service) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldsync resolve <shipment-id> <choice>")
	}

	result, err := svc.ResolveDecision(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	return printRequestResult("Resolution", args[0], result)
}

// printRequestResult выводит один из трёх исходов запроса:
// применено сервером, поставлено в очередь или требуется решение.
func printRequestResult(what, shipmentID string, result *sync.RequestResult) error {
	switch {
	case result.Applied:
		fmt.Printf("✓ %s confirmed by the server for shipment %s\n", what, shipmentID)
		if result.Shipment != nil {
			fmt.Printf("  State: %s\n", result.Shipment.State)
		}

	case result.Queued():
		fmt.Printf("⚠️  %s queued for shipment %s (offline or server unreachable)\n", what, shipmentID)
		fmt.Printf("  Mutation ID: %s\n", result.MutationID)
		fmt.Println("  It will be replayed automatically when connectivity returns.")

	case result.Decision != nil:
		printDecision(shipmentID, result.Decision)

	default:
		return fmt.Errorf("unexpected empty result for %s", what)
	}

	return nil
}

func printDecision(shipmentID string, decision *api.DecisionDetails) {
	fmt.Println("⚠️  The server needs a decision before this operation can complete:")
	fmt.Println()
	if decision.Message != "" {
		fmt.Printf("  %s\n", decision.Message)
	} else {
		fmt.Printf("  %s\n", decision.Code)
	}
	fmt.Println()
	if len(decision.Options) > 0 {
		fmt.Println("  Options:")
		for _, opt := range decision.Options {
			fmt.Printf("    %-12s %s\n", opt.Code, opt.Label)
		}
		fmt.Println()
	}
	fmt.Printf("Run 'fieldsync resolve %s <choice>' to continue.\n", shipmentID)
}
