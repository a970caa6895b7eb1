package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Money is a whole-currency amount submitted by a client form. HTML forms
// frequently post numeric inputs as strings, so unmarshalling accepts both
// a JSON number and a numeric string. A value that fails to parse is kept
// as "supplied but invalid" rather than aborting the decode; the validation
// layer turns that state into a field-level error.
type Money struct {
	value    int64
	supplied bool
	valid    bool
}

// NewMoney returns a valid Money holding the given amount.
func NewMoney(v int64) Money {
	return Money{value: v, supplied: true, valid: true}
}

// Int64 returns the parsed amount. Only meaningful when Valid reports true.
func (m Money) Int64() int64 { return m.value }

// Supplied reports whether the client sent any value at all.
func (m Money) Supplied() bool { return m.supplied }

// Valid reports whether the supplied value parsed as a whole number.
func (m Money) Valid() bool { return m.valid }

// UnmarshalJSON accepts 1000, "1000" and " 1000 ". It never returns an
// error for malformed amounts; the invalid state is inspected later.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	m.supplied = true
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	m.value = v
	m.valid = true
	return nil
}

// MarshalJSON always renders the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.value, 10), nil
}

// Value implements driver.Valuer so repositories can bind Money directly.
func (m Money) Value() (driver.Value, error) {
	if !m.supplied {
		return nil, nil
	}
	if !m.valid {
		return nil, fmt.Errorf("money: cannot persist invalid amount")
	}
	return m.value, nil
}

// Scan implements sql.Scanner for reading bigint columns.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Money{}
		return nil
	case int64:
		*m = NewMoney(v)
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}

