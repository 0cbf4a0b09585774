package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CylinderStatus models the lifecycle state of a physical cylinder. Partial
// covers bought-back units that still carry gas; the remaining fill is
// recorded on the cylinder itself.
type CylinderStatus int

const (
	CylinderFull CylinderStatus = iota
	CylinderEmpty
	CylinderPartial
	CylinderMaintenance
	CylinderWithCustomer
	CylinderRetired
)

var cylinderStatusNames = [...]string{"FULL", "EMPTY", "PARTIAL", "MAINTENANCE", "WITH_CUSTOMER", "RETIRED"}

// Valid reports whether s is a known cylinder status.
func (s CylinderStatus) Valid() bool {
	return int(s) >= 0 && int(s) < len(cylinderStatusNames)
}

func (s CylinderStatus) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return cylinderStatusNames[s]
}

// ParseCylinderStatus converts a wire name to a CylinderStatus.
func ParseCylinderStatus(str string) (CylinderStatus, bool) {
	for i, name := range cylinderStatusNames {
		if name == str {
			return CylinderStatus(i), true
		}
	}
	return 0, false
}

func (s CylinderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CylinderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CylinderStatus(i)
		return nil
	}
	if parsed, ok := ParseCylinderStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s CylinderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CylinderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CylinderFull
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CylinderStatus(v)
	case int:
		*s = CylinderStatus(v)
	}
	return nil
}
