package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_FieldEquivalence(t *testing.T) {
	got := NewConfig(5, 2)
	want := Config{Timeslice: 5, MinRemaining: 2}
	assert.Equal(t, want, got)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, NewConfig(1, 0).Validate())
	assert.NoError(t, NewConfig(10, 10).Validate())

	assert.Error(t, NewConfig(0, 0).Validate(), "zero timeslice")
	assert.Error(t, NewConfig(-3, 0).Validate(), "negative timeslice")
	assert.Error(t, NewConfig(5, -1).Validate(), "negative minimum remaining")
}
