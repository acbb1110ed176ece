package twitterapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyClassification(t *testing.T) {
	assert.True(t, Any("text").scalar())
	assert.True(t, Any(42).scalar())
	assert.True(t, Any(int64(42)).scalar())
	assert.True(t, Any(uint32(7)).scalar())
	assert.True(t, Any(uint64(7)).scalar())
	assert.True(t, Any(uint(7)).scalar())
	assert.False(t, Any([]byte("raw")).scalar())
	assert.False(t, Any([]string{"a", "b"}).scalar())
	assert.False(t, Any(map[string]string{"k": "v"}).scalar())
	assert.False(t, Any(3.14).scalar())
}

func TestValueRender(t *testing.T) {
	assert.Equal(t, "text", String("text").Render())
	assert.Equal(t, "42", Int(42).Render())
	assert.Equal(t, "-7", Int64(-7).Render())
	assert.Equal(t, "raw", Bytes([]byte("raw")).Render())
	assert.Equal(t, "true", Any(true).Render())
}

func TestUint64Render(t *testing.T) {
	// a tweet id beyond int32
	assert.Equal(t, "1585841080431321088", Any(uint64(1585841080431321088)).Render())
	assert.True(t, Any(uint64(1585841080431321088)).scalar())

	// beyond int64, still signable through its decimal string form
	big := Any(uint64(18446744073709551615))
	assert.True(t, big.scalar())
	assert.Equal(t, "18446744073709551615", big.Render())
}

func TestParamsFromStruct(t *testing.T) {
	type searchArgs struct {
		Query string `structs:"q"`
		Count int    `structs:"count"`
		Media []byte `structs:"media"`
	}
	params := ParamsFromStruct(searchArgs{Query: "golang", Count: 10, Media: []byte("GIF89a")})

	assert.Len(t, params, 3)
	assert.Equal(t, "golang", params["q"].Render())
	assert.True(t, params["q"].scalar())
	assert.Equal(t, "10", params["count"].Render())
	assert.True(t, params["count"].scalar())
	assert.False(t, params["media"].scalar())
}

func TestParamsSortedKeys(t *testing.T) {
	params := Params{"b": String("2"), "a": String("1"), "Z": String("0")}
	assert.Equal(t, []string{"Z", "a", "b"}, params.sortedKeys())
}
