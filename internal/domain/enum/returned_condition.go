package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReturnedCondition describes the fill state of a bought-back cylinder.
type ReturnedCondition int

const (
	ReturnedFull ReturnedCondition = iota
	ReturnedPartial
	ReturnedEmpty
)

var returnedConditionNames = [...]string{"FULL", "PARTIAL", "EMPTY"}

// Valid reports whether c is a known returned condition.
func (c ReturnedCondition) Valid() bool {
	return int(c) >= 0 && int(c) < len(returnedConditionNames)
}

func (c ReturnedCondition) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}
	return returnedConditionNames[c]
}

// ParseReturnedCondition converts a wire name to a ReturnedCondition.
func ParseReturnedCondition(s string) (ReturnedCondition, bool) {
	for i, name := range returnedConditionNames {
		if name == s {
			return ReturnedCondition(i), true
		}
	}
	return 0, false
}

func (c ReturnedCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ReturnedCondition) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ReturnedCondition(i)
		return nil
	}
	if parsed, ok := ParseReturnedCondition(str); ok {
		*c = parsed
	}
	return nil
}

func (c ReturnedCondition) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ReturnedCondition) Scan(value interface{}) error {
	if value == nil {
		*c = ReturnedFull
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ReturnedCondition(v)
	case int:
		*c = ReturnedCondition(v)
	}
	return nil
}
