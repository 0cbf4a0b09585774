package cylinder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

func ptr[T any](v T) *T { return &v }

func fullAtStore(storeID uuid.UUID) entity.Cylinder {
	return entity.Cylinder{
		Code:         "CYL-0001",
		CylinderType: enum.CylinderStandard,
		Status:       enum.CylinderFull,
		StoreID:      &storeID,
	}
}

func assertOneLocation(t *testing.T, c entity.Cylinder) {
	t.Helper()
	n := 0
	if c.StoreID != nil {
		n++
	}
	if c.VehicleID != nil {
		n++
	}
	if c.CustomerID != nil {
		n++
	}
	assert.Equal(t, 1, n, "cylinder must sit in exactly one place")
}

func TestSaleMovesFullCylinderToCustomer(t *testing.T) {
	storeID := uuid.New()
	customerID := uuid.New()
	c := fullAtStore(storeID)

	got, err := ApplyTransition(c, Event{
		Kind:   EventSale,
		Target: Location{CustomerID: &customerID},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderWithCustomer, got.Status)
	assert.Equal(t, customerID, *got.CustomerID)
	assert.Nil(t, got.StoreID)
	assertOneLocation(t, got)
}

func TestSaleRejectsNonFullCylinder(t *testing.T) {
	storeID := uuid.New()
	customerID := uuid.New()
	for _, status := range []enum.CylinderStatus{
		enum.CylinderEmpty, enum.CylinderPartial, enum.CylinderMaintenance, enum.CylinderWithCustomer,
	} {
		c := fullAtStore(storeID)
		c.Status = status
		_, err := ApplyTransition(c, Event{Kind: EventSale, Target: Location{CustomerID: &customerID}})
		assert.ErrorIs(t, err, apperror.ErrIllegalTransition, "status %s", status)
	}
}

func TestSaleRequiresCustomerTarget(t *testing.T) {
	storeID := uuid.New()
	c := fullAtStore(storeID)
	_, err := ApplyTransition(c, Event{Kind: EventSale, Target: Location{StoreID: &storeID}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrIllegalTransition)
}

func TestReturnEmptyLandsAtDepot(t *testing.T) {
	customerID := uuid.New()
	vehicleID := uuid.New()
	c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}

	got, err := ApplyTransition(c, Event{
		Kind:   EventReturnEmpty,
		Target: Location{VehicleID: &vehicleID},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderEmpty, got.Status)
	assert.Equal(t, vehicleID, *got.VehicleID)
	assert.Nil(t, got.CustomerID)
	assertOneLocation(t, got)
}

func TestReturnEmptyRejectsCustomerTarget(t *testing.T) {
	customerID := uuid.New()
	other := uuid.New()
	c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}
	_, err := ApplyTransition(c, Event{Kind: EventReturnEmpty, Target: Location{CustomerID: &other}})
	require.Error(t, err)
}

func TestBuybackConditionDeterminesStockState(t *testing.T) {
	customerID := uuid.New()
	storeID := uuid.New()
	remaining := decimal.NewFromFloat(7.5)

	cases := []struct {
		name       string
		condition  enum.ReturnedCondition
		remaining  *decimal.Decimal
		wantStatus enum.CylinderStatus
		wantKg     *decimal.Decimal
	}{
		{"full", enum.ReturnedFull, nil, enum.CylinderFull, nil},
		{"partial", enum.ReturnedPartial, &remaining, enum.CylinderPartial, &remaining},
		{"empty", enum.ReturnedEmpty, nil, enum.CylinderEmpty, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}
			got, err := ApplyTransition(c, Event{
				Kind:        EventBuyback,
				Condition:   tc.condition,
				RemainingKg: tc.remaining,
				Target:      Location{StoreID: &storeID},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			if tc.wantKg == nil {
				assert.Nil(t, got.RemainingKg)
			} else {
				require.NotNil(t, got.RemainingKg)
				assert.True(t, tc.wantKg.Equal(*got.RemainingKg))
			}
			assertOneLocation(t, got)
		})
	}
}

func TestPartialBuybackRequiresRemainingKg(t *testing.T) {
	customerID := uuid.New()
	storeID := uuid.New()
	c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}
	_, err := ApplyTransition(c, Event{
		Kind:      EventBuyback,
		Condition: enum.ReturnedPartial,
		Target:    Location{StoreID: &storeID},
	})
	require.Error(t, err)
}

func TestBuybackRejectsCylinderNotWithCustomer(t *testing.T) {
	storeID := uuid.New()
	c := fullAtStore(storeID)
	_, err := ApplyTransition(c, Event{
		Kind:      EventBuyback,
		Condition: enum.ReturnedEmpty,
		Target:    Location{StoreID: &storeID},
	})
	assert.ErrorIs(t, err, apperror.ErrIllegalTransition)
}

func TestRefillFromEmptyAndPartial(t *testing.T) {
	storeID := uuid.New()
	for _, status := range []enum.CylinderStatus{enum.CylinderEmpty, enum.CylinderPartial} {
		c := fullAtStore(storeID)
		c.Status = status
		c.RemainingKg = ptr(decimal.NewFromFloat(3.2))

		got, err := ApplyTransition(c, Event{Kind: EventRefill})
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, enum.CylinderFull, got.Status)
		assert.Nil(t, got.RemainingKg)
		assert.Equal(t, storeID, *got.StoreID, "refill keeps depot location by default")
		assertOneLocation(t, got)
	}
}

func TestRefillRejectsFullAndHeldCylinders(t *testing.T) {
	storeID := uuid.New()
	customerID := uuid.New()
	full := fullAtStore(storeID)
	_, err := ApplyTransition(full, Event{Kind: EventRefill})
	assert.ErrorIs(t, err, apperror.ErrIllegalTransition)

	held := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}
	_, err = ApplyTransition(held, Event{Kind: EventRefill})
	assert.ErrorIs(t, err, apperror.ErrIllegalTransition)
}

func TestMaintenanceCycle(t *testing.T) {
	storeID := uuid.New()
	c := fullAtStore(storeID)

	inShop, err := ApplyTransition(c, Event{Kind: EventStartMaintenance})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderMaintenance, inShop.Status)

	back, err := ApplyTransition(inShop, Event{
		Kind:            EventEndMaintenance,
		ResultingStatus: enum.CylinderEmpty,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderEmpty, back.Status)
	assertOneLocation(t, back)
}

func TestStartMaintenanceRejectsHeldCylinder(t *testing.T) {
	customerID := uuid.New()
	c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}
	_, err := ApplyTransition(c, Event{Kind: EventStartMaintenance})
	assert.ErrorIs(t, err, apperror.ErrIllegalTransition)
}

func TestEndMaintenanceRequiresFillState(t *testing.T) {
	storeID := uuid.New()
	c := fullAtStore(storeID)
	c.Status = enum.CylinderMaintenance

	_, err := ApplyTransition(c, Event{Kind: EventEndMaintenance, ResultingStatus: enum.CylinderWithCustomer})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrIllegalTransition)

	_, err = ApplyTransition(c, Event{Kind: EventEndMaintenance, ResultingStatus: enum.CylinderFull})
	assert.NoError(t, err)
}

func TestRetireIsTerminal(t *testing.T) {
	storeID := uuid.New()
	c := fullAtStore(storeID)

	retired, err := ApplyTransition(c, Event{Kind: EventRetire})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderRetired, retired.Status)

	for k := EventSale; k <= EventRetire; k++ {
		_, err := ApplyTransition(retired, Event{Kind: k})
		assert.ErrorIs(t, err, apperror.ErrIllegalTransition, "event %s", k)
	}
}

func TestRetireHeldCylinderNeedsDepot(t *testing.T) {
	customerID := uuid.New()
	storeID := uuid.New()
	c := entity.Cylinder{Status: enum.CylinderWithCustomer, CustomerID: &customerID}

	_, err := ApplyTransition(c, Event{Kind: EventRetire})
	require.Error(t, err)

	got, err := ApplyTransition(c, Event{Kind: EventRetire, Target: Location{StoreID: &storeID}})
	require.NoError(t, err)
	assert.Equal(t, enum.CylinderRetired, got.Status)
	assert.Nil(t, got.CustomerID)
	assertOneLocation(t, got)
}

func TestEventKindRoundTrip(t *testing.T) {
	for k := EventSale; k <= EventRetire; k++ {
		parsed, ok := ParseEventKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseEventKind("SHAKE")
	assert.False(t, ok)
}
