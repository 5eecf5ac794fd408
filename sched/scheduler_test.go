package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduler_RoundRobin(t *testing.T) {
	s := NewScheduler("round-robin", NewConfig(5, 1))
	assert.IsType(t, &RoundRobin{}, s)
}

func TestNewScheduler_EmptyName_DefaultsToRoundRobin(t *testing.T) {
	s := NewScheduler("", NewConfig(5, 1))
	assert.IsType(t, &RoundRobin{}, s)
}

func TestNewScheduler_UnknownName_Panics(t *testing.T) {
	assert.Panics(t, func() {
		NewScheduler("lottery", NewConfig(5, 1))
	})
}

func TestNewScheduler_InvalidConfig_Panics(t *testing.T) {
	assert.Panics(t, func() {
		NewScheduler("round-robin", NewConfig(0, 0))
	})
}

func TestIsValidPolicy(t *testing.T) {
	assert.True(t, IsValidPolicy(""))
	assert.True(t, IsValidPolicy("round-robin"))
	assert.False(t, IsValidPolicy("priority"))
}

func TestPolicyNames_SortedWithoutDefaultAlias(t *testing.T) {
	assert.Equal(t, []string{"round-robin"}, PolicyNames())
}
