package query

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameAccessors(t *testing.T) {
	f := &Frame{
		Columns: []string{"State", "Events"},
		Rows: [][]any{
			{"WASHINGTON", int64(2)},
			{"TEXAS", int64(5)},
		},
	}

	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, 2, f.NumCols())
	assert.Equal(t, []any{"WASHINGTON", "TEXAS"}, f.Column("State"))
	assert.Equal(t, []any{int64(2), int64(5)}, f.Column("Events"))
	assert.Nil(t, f.Column("NoSuchColumn"))
}

func TestFrameMarshalJSON(t *testing.T) {
	f := &Frame{
		Columns: []string{"name"},
		Rows:    [][]any{{"a"}},
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["name"],"rows":[["a"]]}`, string(data))
}

func TestFrameEmptyResultMarshalsAsArrays(t *testing.T) {
	f := &Frame{Columns: []string{"a"}, Rows: [][]any{}}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["a"],"rows":[]}`, string(data))
}

func TestConvertValue(t *testing.T) {
	assert.Equal(t, "bytes", convertValue([]byte("bytes")))

	ts := time.Date(2007, 12, 30, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2007-12-30T08:00:00Z", convertValue(ts))

	assert.Equal(t, int64(7), convertValue(int64(7)))
	assert.Nil(t, convertValue(nil))
}
