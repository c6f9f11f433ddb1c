package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Clone(t *testing.T) {
	orig := Params{"symbol": "btcusdt", "type": "buy"}

	clone := orig.Clone()
	clone.Set("type", "sell").Set("amount", "1")

	assert.Equal(t, "buy", orig["type"])
	assert.NotContains(t, orig, "amount")
	assert.Equal(t, "sell", clone["type"])
}

func TestParams_Clone_Nil(t *testing.T) {
	var p Params

	clone := p.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)

	clone.Set("key", "value")
	assert.Equal(t, "value", clone["key"])
}
