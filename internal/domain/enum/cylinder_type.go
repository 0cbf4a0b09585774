package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CylinderType is the commercial cylinder size class. The domestic 11.8kg
// size doubles as the reference size for plant pricing.
type CylinderType int

const (
	CylinderDomestic CylinderType = iota
	CylinderStandard
	CylinderCommercial
)

var cylinderTypeNames = [...]string{"DOMESTIC", "STANDARD", "COMMERCIAL"}

var cylinderTypeNominalKg = [...]decimal.Decimal{
	decimal.NewFromFloat(11.8),
	decimal.NewFromInt(15),
	decimal.NewFromFloat(45.4),
}

// AllCylinderTypes lists every cylinder size class.
var AllCylinderTypes = []CylinderType{CylinderDomestic, CylinderStandard, CylinderCommercial}

// Valid reports whether t is a known cylinder type.
func (t CylinderType) Valid() bool {
	return int(t) >= 0 && int(t) < len(cylinderTypeNames)
}

// NominalKg returns the nominal gas content of the cylinder size.
func (t CylinderType) NominalKg() decimal.Decimal {
	if !t.Valid() {
		return decimal.Zero
	}
	return cylinderTypeNominalKg[t]
}

func (t CylinderType) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return cylinderTypeNames[t]
}

// ParseCylinderType converts a wire name to a CylinderType.
func ParseCylinderType(s string) (CylinderType, bool) {
	for i, name := range cylinderTypeNames {
		if name == s {
			return CylinderType(i), true
		}
	}
	return 0, false
}

func (t CylinderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CylinderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CylinderType(i)
		return nil
	}
	if parsed, ok := ParseCylinderType(str); ok {
		*t = parsed
	}
	return nil
}

func (t CylinderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CylinderType) Scan(value interface{}) error {
	if value == nil {
		*t = CylinderDomestic
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CylinderType(v)
	case int:
		*t = CylinderType(v)
	}
	return nil
}
