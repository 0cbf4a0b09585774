package cylinder

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

// EventKind triggers a cylinder state transition. Sale, ReturnEmpty and
// Buyback arrive from ledger postings; the rest are operator-initiated.
type EventKind int

const (
	EventSale EventKind = iota
	EventReturnEmpty
	EventBuyback
	EventRefill
	EventStartMaintenance
	EventEndMaintenance
	EventRetire
)

var eventKindNames = [...]string{"SALE", "RETURN_EMPTY", "BUYBACK", "REFILL", "START_MAINTENANCE", "END_MAINTENANCE", "RETIRE"}

func (k EventKind) String() string {
	if int(k) < 0 || int(k) >= len(eventKindNames) {
		return "UNKNOWN"
	}
	return eventKindNames[k]
}

// ParseEventKind converts a wire name to an EventKind.
func ParseEventKind(s string) (EventKind, bool) {
	for i, name := range eventKindNames {
		if name == s {
			return EventKind(i), true
		}
	}
	return 0, false
}

// Location is the destination of a transition. At most one field may be
// set; transitions that move a cylinder off a customer require a store or
// vehicle.
type Location struct {
	StoreID    *uuid.UUID
	VehicleID  *uuid.UUID
	CustomerID *uuid.UUID
}

func (l Location) count() int {
	n := 0
	if l.StoreID != nil {
		n++
	}
	if l.VehicleID != nil {
		n++
	}
	if l.CustomerID != nil {
		n++
	}
	return n
}

// Event describes a requested transition.
type Event struct {
	Kind EventKind
	// Condition applies to Buyback events only.
	Condition enum.ReturnedCondition
	// RemainingKg applies to partial-condition buybacks.
	RemainingKg *decimal.Decimal
	// Target is where the cylinder lands. Required whenever the cylinder
	// leaves a customer; EndMaintenance and Refill may omit it to keep the
	// current depot location.
	Target Location
	// ResultingStatus applies to EndMaintenance: the fill state the
	// cylinder re-enters service with (FULL or EMPTY).
	ResultingStatus enum.CylinderStatus
}

// ApplyTransition returns a copy of the cylinder with the transition
// applied, or ErrIllegalTransition if the (status, event) pair is not in
// the lifecycle table. Exactly one location field is set on success, and
// the location change is atomic with the status change.
func ApplyTransition(c entity.Cylinder, ev Event) (entity.Cylinder, error) {
	if c.Status == enum.CylinderRetired {
		return entity.Cylinder{}, apperror.ErrIllegalTransition
	}

	switch ev.Kind {
	case EventSale:
		if c.Status != enum.CylinderFull {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		if ev.Target.CustomerID == nil || ev.Target.count() != 1 {
			return entity.Cylinder{}, apperror.NewBadRequestError("sale requires a customer location")
		}
		c.Status = enum.CylinderWithCustomer
		return placed(c, ev.Target), nil

	case EventReturnEmpty:
		if c.Status != enum.CylinderWithCustomer {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		if err := requireDepot(ev.Target); err != nil {
			return entity.Cylinder{}, err
		}
		c.Status = enum.CylinderEmpty
		c.RemainingKg = nil
		return placed(c, ev.Target), nil

	case EventBuyback:
		if c.Status != enum.CylinderWithCustomer {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		if err := requireDepot(ev.Target); err != nil {
			return entity.Cylinder{}, err
		}
		switch ev.Condition {
		case enum.ReturnedFull:
			c.Status = enum.CylinderFull
			c.RemainingKg = nil
		case enum.ReturnedPartial:
			if ev.RemainingKg == nil {
				return entity.Cylinder{}, apperror.NewBadRequestError("partial buyback requires remaining kg")
			}
			c.Status = enum.CylinderPartial
			c.RemainingKg = ev.RemainingKg
		case enum.ReturnedEmpty:
			c.Status = enum.CylinderEmpty
			c.RemainingKg = nil
		default:
			return entity.Cylinder{}, apperror.NewBadRequestError("unknown returned condition")
		}
		return placed(c, ev.Target), nil

	case EventRefill:
		if c.Status != enum.CylinderEmpty && c.Status != enum.CylinderPartial {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		c.Status = enum.CylinderFull
		c.RemainingKg = nil
		return placedOrKept(c, ev.Target)

	case EventStartMaintenance:
		if c.Status == enum.CylinderWithCustomer {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		c.Status = enum.CylinderMaintenance
		c.RemainingKg = nil
		return placedOrKept(c, ev.Target)

	case EventEndMaintenance:
		if c.Status != enum.CylinderMaintenance {
			return entity.Cylinder{}, apperror.ErrIllegalTransition
		}
		if ev.ResultingStatus != enum.CylinderFull && ev.ResultingStatus != enum.CylinderEmpty {
			return entity.Cylinder{}, apperror.NewBadRequestError("maintenance ends in FULL or EMPTY")
		}
		c.Status = ev.ResultingStatus
		return placedOrKept(c, ev.Target)

	case EventRetire:
		// Terminal from any live state. A customer-held cylinder must be
		// brought back to a depot in the same move.
		if c.Status == enum.CylinderWithCustomer {
			if err := requireDepot(ev.Target); err != nil {
				return entity.Cylinder{}, err
			}
		}
		c.Status = enum.CylinderRetired
		c.RemainingKg = nil
		return placedOrKept(c, ev.Target)
	}

	return entity.Cylinder{}, apperror.ErrIllegalTransition
}

func requireDepot(l Location) error {
	if l.CustomerID != nil || l.count() != 1 {
		return apperror.NewBadRequestError("exactly one of store or vehicle required")
	}
	return nil
}

// placed sets the one requested location and clears the other two.
func placed(c entity.Cylinder, l Location) entity.Cylinder {
	c.StoreID = l.StoreID
	c.VehicleID = l.VehicleID
	c.CustomerID = l.CustomerID
	return c
}

// placedOrKept keeps the current depot location when no target is given.
func placedOrKept(c entity.Cylinder, l Location) (entity.Cylinder, error) {
	if l.count() == 0 {
		c.CustomerID = nil
		return c, nil
	}
	if err := requireDepot(l); err != nil {
		return entity.Cylinder{}, err
	}
	return placed(c, l), nil
}
