package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdLiveWindow(t *testing.T) {
	now := time.Now()

	ad := &Ad{
		Status:   "active",
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}

	assert.True(t, ad.Live(now))
	assert.False(t, ad.Live(now.Add(-2*time.Hour)), "before the schedule window")
	assert.False(t, ad.Live(now.Add(2*time.Hour)), "after the schedule window")

	ad.Status = "inactive"
	assert.False(t, ad.Live(now), "inactive ads never serve")
}

func TestAdLiveOpenEnded(t *testing.T) {
	now := time.Now()

	ad := &Ad{
		Status:   "active",
		StartsAt: now.Add(-time.Hour),
	}

	assert.True(t, ad.Live(now.Add(24*365*time.Hour)), "zero EndsAt means no expiry")
}
