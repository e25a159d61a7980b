package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server", "-a", ":4444", "-d", "postgres://localhost/bookmarks", "-s", "flag-secret", "-t", "5"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.Address, ":4444")
	assert.Equal(t, c.DatabaseDSN, "postgres://localhost/bookmarks")
	assert.Equal(t, c.SecretKey, "flag-secret")
	assert.Equal(t, c.AccessTokenValidityDuration, 5*time.Minute)
}

func Test_parseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server", "-x", "1", "-a", ":4444"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.Address, ":4444")
}
