package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignFromBit(t *testing.T) {
	assert.Equal(t, Positive, SignFromBit(false))
	assert.Equal(t, Negative, SignFromBit(true))
}

func TestSign_Apply(t *testing.T) {
	assert.Equal(t, 0.5, Positive.Apply(0.5))
	assert.Equal(t, -0.5, Negative.Apply(0.5))
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
}
