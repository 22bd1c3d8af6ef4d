// Package cli implements the fieldsync command-line surface. It is a thin
// consumer of the sync coordinator: every command reads or issues intents
// through the coordinator interface and formats the result for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/mobo-open-source/fieldsync/internal/models"
)

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("fieldsync - offline-first field operations client")
	fmt.Println()
	fmt.Println("Usage: fieldsync [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                                  connectivity and pending queue summary")
	fmt.Println("  pending [shipment-id]                   list pending mutations")
	fmt.Println("  discard <mutation-id>                   drop a queued mutation")
	fmt.Println("  sync                                    drain the pending queue now")
	fmt.Println("  show <shipment-id>                      show cached shipment and lines")
	fmt.Println("  validate <shipment-id>                  validate a shipment")
	fmt.Println("  cancel <shipment-id>                    cancel a shipment")
	fmt.Println("  edit <shipment-id> <field=value>...     edit header fields")
	fmt.Println("  line add <shipment-id> <field=value>... add a line")
	fmt.Println("  line update <shipment-id> <line-id> <field=value>...")
	fmt.Println("  line delete <shipment-id> <line-id>")
	fmt.Println("  resolve <shipment-id> <choice>          resolve a pending decision")
	fmt.Println("  refresh <shipment-id|reference>         pull fresh data from the server")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config <path>   config file (default ~/.fieldsync/config.toml)")
	fmt.Println("  -server <url>    server URL override")
	fmt.Println("  -db <path>       local database path override")
	fmt.Println("  -version         show version information")
}

// parseFields разбирает аргументы вида field=value в payload мутации
func parseFields(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one field=value argument")
	}

	fields := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid field argument %q, expected field=value", arg)
		}
		fields[name] = value
	}
	return fields, nil
}

// statusBadge возвращает человекочитаемую метку статуса записи очереди.
// Конфликты выделяются отдельно: это не "ещё не отправлено", а "ждёт решения".
func statusBadge(status models.MutationStatus) string {
	switch status {
	case models.MutationStatusQueued:
		return "queued"
	case models.MutationStatusSyncing:
		return "syncing..."
	case models.MutationStatusFailed:
		return "failed (will retry)"
	case models.MutationStatusConflict:
		return "CONFLICT (needs decision)"
	default:
		return string(status)
	}
}
