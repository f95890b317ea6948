package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Tags is the product tag list. It is stored as a JSON array without HTML
// escaping so keyword search matches "R&D" as typed.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string(t)); err != nil {
		return nil, err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func (t *Tags) Scan(value any) error {
	return (*datatypes.JSONSlice[string])(t).Scan(value)
}

func (Tags) GormDataType() string {
	return datatypes.JSONSlice[string]{}.GormDataType()
}

func (t Tags) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSONSlice[string](t).GormDBDataType(db, field)
}
