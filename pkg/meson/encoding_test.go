package meson

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	_ encoding.TextMarshaler     = ID{}
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID{}
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ json.Marshaler             = ID{}
	_ json.Unmarshaler           = (*ID)(nil)
	_ sql.Scanner                = (*ID)(nil)
	_ driver.Valuer              = ID{}
)

const sampleHex = "01629128e71ed9686a4716e2f55e"

type record struct {
	Meson ID  `json:"meson"`
	Ref   *ID `json:"ref,omitempty"`
}

func TestJSONScalar(t *testing.T) {
	id := MustParse(sampleHex)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+sampleHex+`"`, string(data))

	var decoded ID
	require.NoError(t, json.Unmarshal([]byte(`"`+sampleHex+`"`), &decoded))
	assert.Equal(t, id, decoded)
}

func TestJSONInStruct(t *testing.T) {
	id := MustParse(sampleHex)

	data, err := json.Marshal(record{Meson: id})
	require.NoError(t, err)
	assert.Equal(t, `{"meson":"`+sampleHex+`"}`, string(data))

	var decoded record
	require.NoError(t, json.Unmarshal([]byte(`{"meson":"01629128e71e-d9686a47-16e2f55e","ref":"`+sampleHex+`"}`), &decoded))
	assert.Equal(t, id, decoded.Meson)
	require.NotNil(t, decoded.Ref)
	assert.Equal(t, id, *decoded.Ref)
}

func TestJSONEmptyValues(t *testing.T) {
	var decoded record
	require.NoError(t, json.Unmarshal([]byte(`{"meson":"","ref":null}`), &decoded))
	assert.True(t, decoded.Meson.IsZero())
	assert.Nil(t, decoded.Ref)

	id := MustParse(sampleHex)
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.Equal(t, sampleHex, id.Hex())
}

func TestJSONErrors(t *testing.T) {
	var id ID
	assert.ErrorIs(t, json.Unmarshal([]byte(`"1"`), &id), ErrFormat)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"eeeeeeeeeeeeeeeeeeeeeeeeeeee"`), &id), ErrValidation)
	assert.Error(t, json.Unmarshal([]byte(`12`), &id))
}

func TestTextRoundTrip(t *testing.T) {
	id := MustParse(sampleHex)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, sampleHex, string(text))

	var decoded ID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)

	require.NoError(t, decoded.UnmarshalText([]byte(id.Formatted())))
	assert.Equal(t, id, decoded)

	assert.ErrorIs(t, decoded.UnmarshalText([]byte("xyz")), ErrFormat)
}

func TestBinaryRoundTrip(t *testing.T) {
	id := MustParse(sampleHex)

	data, err := id.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, Size)

	var decoded ID
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, id, decoded)

	assert.ErrorIs(t, decoded.UnmarshalBinary(data[:10]), ErrValidation)
}

func TestScan(t *testing.T) {
	id := MustParse(sampleHex)

	cases := map[string]interface{}{
		"binary":          id.Bytes(),
		"text bytes":      []byte(sampleHex),
		"string":          sampleHex,
		"formatted bytes": []byte(id.Formatted()),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			var scanned ID
			require.NoError(t, scanned.Scan(value))
			assert.Equal(t, id, scanned)
		})
	}

	scanned := id
	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	assert.ErrorIs(t, scanned.Scan(int64(42)), ErrInvalidArgument)
	assert.ErrorIs(t, scanned.Scan("nope"), ErrFormat)
}

func TestValue(t *testing.T) {
	id := MustParse(sampleHex)

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, id.Bytes(), v)
}

func TestGormDataTypes(t *testing.T) {
	assert.Equal(t, "bytes", ID{}.GormDataType())

	cases := []struct {
		dialector gorm.Dialector
		want      string
	}{
		{postgres.New(postgres.Config{DSN: "host=localhost"}), "BYTEA"},
		{mysql.New(mysql.Config{DSN: "user:pass@tcp(localhost:3306)/meson"}), "BINARY(14)"},
	}
	for _, tc := range cases {
		db := &gorm.DB{Config: &gorm.Config{Dialector: tc.dialector}}
		assert.Equal(t, tc.want, ID{}.GormDBDataType(db, nil), tc.dialector.Name())
	}
}
