package meson

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MarshalText implements encoding.TextMarshaler with the canonical form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both the compact and
// the hyphenated forms are accepted; empty text leaves the zero ID.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the ID as a JSON string in canonical form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Hex())
}

// UnmarshalJSON decodes a JSON string. null and "" leave the zero ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements sql.Scanner. Binary columns hold the 14 raw bytes; text
// columns may hold either text form. NULL yields the zero ID.
func (id *ID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*id = ID{}
		return nil
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into meson.ID", ErrInvalidArgument, value)
	}
}

// Value implements driver.Valuer.
func (id ID) Value() (driver.Value, error) {
	return id.Bytes(), nil
}

// GormDataType reports the generic column type to gorm.
func (ID) GormDataType() string {
	return string(schema.Bytes)
}

// GormDBDataType picks a fixed-width binary column where the dialect has one.
func (ID) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "sqlserver":
		return fmt.Sprintf("BINARY(%d)", Size)
	case "postgres":
		return "BYTEA"
	default:
		return "BLOB"
	}
}
