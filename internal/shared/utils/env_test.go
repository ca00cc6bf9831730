package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOLAR_TEST_VALUE", "mars")
	assert.Equal(t, "mars", GetEnv("SOLAR_TEST_VALUE", "earth"))
	assert.Equal(t, "earth", GetEnv("SOLAR_TEST_MISSING", "earth"))
}

func TestGetEnvTypedFallbacks(t *testing.T) {
	t.Setenv("SOLAR_TEST_INT", "not-a-number")
	t.Setenv("SOLAR_TEST_FLOAT", "2.5")
	t.Setenv("SOLAR_TEST_BOOL", "true")
	t.Setenv("SOLAR_TEST_MINUTES", "15")

	assert.Equal(t, 7, GetEnvInt("SOLAR_TEST_INT", 7))
	assert.Equal(t, 2.5, GetEnvFloat("SOLAR_TEST_FLOAT", 1))
	assert.True(t, GetEnvBool("SOLAR_TEST_BOOL", false))
	assert.False(t, GetEnvBool("SOLAR_TEST_BOOL_MISSING", false))
	assert.Equal(t, 15*time.Minute, GetEnvDuration("SOLAR_TEST_MINUTES", 1, time.Minute))
}
