package models

import (
	"strconv"
	"time"
)

// Overlay вычисляет "эффективное" локальное состояние: кэшированный снимок
// плюс ещё не подтверждённые локальные изменения. Результат вычисляется при
// каждом чтении и никогда не сохраняется, чтобы кэш и очередь не могли
// разойтись.

// OverlayShipment returns a copy of the cached shipment with all outstanding
// header-level mutations applied. The input snapshot is never modified.
// Mutations must be ordered oldest-first; the latest intent wins.
func OverlayShipment(s *Shipment, mutations []*PendingMutation) *Shipment {
	out := cloneShipment(s)

	for _, m := range mutations {
		if m.ShipmentID != s.ID || m.Kind.LineScoped() || !m.Outstanding() {
			continue
		}

		switch m.Kind {
		case MutationValidate:
			out.State = ShipmentStateValidatePending
		case MutationCancel:
			out.State = ShipmentStateCancelPending
		case MutationUpdateHeader:
			applyHeaderDiff(out, m.Payload)
		}
		out.PendingSync = true
	}

	return out
}

// OverlayLines returns the effective line set for a shipment: cached lines
// with outstanding line-level mutations (add, update, delete) applied.
func OverlayLines(lines []*ShipmentLine, mutations []*PendingMutation) []*ShipmentLine {
	out := make([]*ShipmentLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, cloneLine(l))
	}

	for _, m := range mutations {
		if !m.Kind.LineScoped() || !m.Outstanding() {
			continue
		}

		switch m.Kind {
		case MutationAddLine:
			if findLine(out, m.LineID) == nil {
				line := &ShipmentLine{
					ID:          m.LineID,
					ShipmentID:  m.ShipmentID,
					PendingSync: true,
				}
				applyLineFields(line, m.Payload)
				out = append(out, line)
			}
		case MutationUpdateLine:
			if line := findLine(out, m.LineID); line != nil {
				applyLineFields(line, m.Payload)
				line.PendingSync = true
			}
		case MutationDeleteLine:
			out = removeLine(out, m.LineID)
		}
	}

	return out
}

// applyHeaderDiff накладывает diff полей заголовка на отгрузку.
// Неизвестные поля попадают в Attributes.
func applyHeaderDiff(s *Shipment, diff map[string]string) {
	for field, value := range diff {
		switch field {
		case "note":
			s.Note = value
		case "origin":
			s.Origin = value
		case "destination":
			s.Destination = value
		case "contact_id":
			s.ContactID = value
		case "operator_id":
			s.OperatorID = value
		case "reference":
			s.Reference = value
		case "scheduled_at":
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				s.ScheduledAt = t
			}
		default:
			if s.Attributes == nil {
				s.Attributes = make(map[string]string)
			}
			s.Attributes[field] = value
		}
	}
}

// applyLineFields накладывает поля из payload на позицию.
func applyLineFields(l *ShipmentLine, fields map[string]string) {
	for field, value := range fields {
		switch field {
		case "product_id":
			l.ProductID = value
		case "description":
			l.Description = value
		case "unit":
			l.Unit = value
		case "quantity":
			if q, err := strconv.ParseFloat(value, 64); err == nil {
				l.Quantity = q
			}
		default:
			if l.Attributes == nil {
				l.Attributes = make(map[string]string)
			}
			l.Attributes[field] = value
		}
	}
}

func cloneShipment(s *Shipment) *Shipment {
	out := *s
	if s.Attributes != nil {
		out.Attributes = make(map[string]string, len(s.Attributes))
		for k, v := range s.Attributes {
			out.Attributes[k] = v
		}
	}
	return &out
}

func cloneLine(l *ShipmentLine) *ShipmentLine {
	out := *l
	if l.Attributes != nil {
		out.Attributes = make(map[string]string, len(l.Attributes))
		for k, v := range l.Attributes {
			out.Attributes[k] = v
		}
	}
	return &out
}

func findLine(lines []*ShipmentLine, id string) *ShipmentLine {
	for _, l := range lines {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func removeLine(lines []*ShipmentLine, id string) []*ShipmentLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
