package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	set := DefaultProfiles()
	require.Len(t, set.Names(), 10)

	p, ok := set.Lookup("tight-aggressive")
	require.True(t, ok)
	assert.Equal(t, 20.0, p.VPIP)
	assert.Equal(t, 0.8, p.HandRangeMultiplier)

	_, ok = set.Lookup("space-alien")
	assert.False(t, ok)
}

func TestLoadProfiles(t *testing.T) {
	config := `
profile "hero-reader" {
  vpip                  = 28
  pfr                   = 20
  aggression            = 3.0
  bluff_freq            = 0.1
  hand_range_multiplier = 1.1
  position_awareness    = 0.5
  stack_sensitivity     = 0.5
}

profile "maniac" {
  vpip                  = 70
  pfr                   = 50
  aggression            = 7.0
  bluff_freq            = 0.4
  hand_range_multiplier = 2.8
  position_awareness    = 0.3
  stack_sensitivity     = 0.2
}
`
	path := filepath.Join(t.TempDir(), "profiles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	set, err := LoadProfiles(path)
	require.NoError(t, err)

	// New profile extends the set
	p, ok := set.Lookup("hero-reader")
	require.True(t, ok)
	assert.Equal(t, 28.0, p.VPIP)

	// Known name replaces the builtin
	p, ok = set.Lookup("maniac")
	require.True(t, ok)
	assert.Equal(t, 70.0, p.VPIP)

	// Untouched builtins survive
	_, ok = set.Lookup("nit")
	assert.True(t, ok)
	assert.Len(t, set.Names(), 11)
}

func TestLoadProfilesInvalid(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfiles(filepath.Join(dir, "absent.hcl"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadProfiles(write("bad.hcl", `profile "x" {`))
		assert.Error(t, err)
	})

	t.Run("zero vpip", func(t *testing.T) {
		_, err := LoadProfiles(write("vpip.hcl", `
profile "ghost" {
  vpip                  = 0
  pfr                   = 5
  aggression            = 1.0
  bluff_freq            = 0.0
  hand_range_multiplier = 1.0
  position_awareness    = 0.5
  stack_sensitivity     = 0.5
}
`))
		assert.ErrorContains(t, err, "vpip")
	})

	t.Run("zero range multiplier", func(t *testing.T) {
		_, err := LoadProfiles(write("mult.hcl", `
profile "ghost" {
  vpip                  = 20
  pfr                   = 5
  aggression            = 1.0
  bluff_freq            = 0.0
  hand_range_multiplier = 0
  position_awareness    = 0.5
  stack_sensitivity     = 0.5
}
`))
		assert.ErrorContains(t, err, "hand_range_multiplier")
	})
}
