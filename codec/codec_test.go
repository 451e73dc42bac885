package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type record struct {
	Key  string    `json:"key"`
	Size int64     `json:"size"`
	Date time.Time `json:"date"`
}

func codecs() []Codec {
	return []Codec{JSON{}, GoJSON{}}
}

func TestRoundTrip_List(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			in := []record{
				{Key: "A", Size: 1, Date: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
				{Key: "B", Size: 2, Date: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)},
				{Key: "C", Size: 3, Date: time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)},
			}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			out, err := DecodeList[record](c, data)
			require.NoError(t, err)
			require.Equal(t, in, out) // order preserved
		})
	}
}

func TestRoundTrip_IntKeyedMap(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			in := map[int]record{
				1:  {Key: "A", Size: 10},
				17: {Key: "B", Size: 20},
			}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			out, err := DecodeMap[int, record](c, data)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}
}

func TestRoundTrip_FlatRecord(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			in := record{Key: "X", Size: 42}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			out, err := DecodeValue[record](c, data)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}
}

func TestDecode_Corrupt(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			// Truncated JSON.
			_, err := DecodeList[record](c, []byte(`[{"key":"A","si`))
			require.Error(t, err)
			require.True(t, IsDecodeError(err))
		})
	}
}

func TestDecode_ShapeMismatch(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			// An object where a list is requested.
			_, err := DecodeList[string](c, []byte(`{"a":1}`))
			require.Error(t, err)
			require.True(t, IsDecodeError(err))

			// A list where a map is requested.
			_, err = DecodeMap[int, string](c, []byte(`["a"]`))
			require.Error(t, err)
			require.True(t, IsDecodeError(err))
		})
	}
}

func TestCrossCodecCompatibility(t *testing.T) {
	in := map[int]string{1: "a", 2: "b"}

	data := MustMarshal(JSON{}, in)
	out, err := DecodeMap[int, string](GoJSON{}, data)
	require.NoError(t, err)
	require.Equal(t, in, out)

	data = MustMarshal(GoJSON{}, in)
	out, err = DecodeMap[int, string](JSON{}, data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	require.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	require.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	require.False(t, ok)
}
