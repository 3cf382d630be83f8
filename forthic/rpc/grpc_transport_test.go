package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestToStructValue_TimeEncodesAsRFC3339(t *testing.T) {
	when := time.Date(2025, 5, 24, 10, 15, 0, 0, time.UTC)

	v, err := toStructValue(when)
	require.NoError(t, err)

	assert.Equal(t, "2025-05-24T10:15:00Z", v.GetStringValue())
}

func TestToListValue_EncodesNestedArraysAndRecords(t *testing.T) {
	items := []interface{}{
		int64(3),
		"hello",
		[]interface{}{true, nil},
		map[string]interface{}{"key": "val"},
	}

	list, err := toListValue(items)
	require.NoError(t, err)
	require.Len(t, list.Values, 4)

	assert.Equal(t, float64(3), list.Values[0].GetNumberValue())
	assert.Equal(t, "hello", list.Values[1].GetStringValue())

	nested := list.Values[2].GetListValue()
	require.NotNil(t, nested)
	assert.True(t, nested.Values[0].GetBoolValue())
	assert.Equal(t, structpb.NullValue_NULL_VALUE, nested.Values[1].GetNullValue())

	rec := list.Values[3].GetStructValue()
	require.NotNil(t, rec)
	assert.Equal(t, "val", rec.Fields["key"].GetStringValue())
}
