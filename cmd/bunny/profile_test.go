package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/assembunny/cpu"
)

func writeProfile(t *testing.T, text string) (path string) {
	path = filepath.Join(t.TempDir(), "run.toml")
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestLoadProfile(t *testing.T) {
	assert := assert.New(t)

	path := writeProfile(t, `
program = "clock.bunny"
step-limit = 5000
unoptimized = true

[registers]
a = 182
d = -3

[defines]
BASE = "2541"
`)

	profile, err := LoadProfile(path)
	assert.NoError(err)
	assert.Equal("clock.bunny", profile.Program)
	assert.Equal(5000, profile.StepLimit)
	assert.True(profile.Unoptimized)
	assert.False(profile.Verbose)
	assert.Equal(map[string]string{"BASE": "2541"}, profile.Defines)

	seed, err := profile.Seed()
	assert.NoError(err)
	assert.Equal(cpu.RegisterBank{182, 0, 0, -3}, seed)
}

func TestLoadProfile_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	profile, err := LoadProfile(writeProfile(t, "program = 12\n"))
	assert.Error(err)
	assert.Nil(profile)

	profile, err = LoadProfile(writeProfile(t, "step_limit = 12\n"))
	assert.ErrorIs(err, ErrProfileKey)
	assert.ErrorContains(err, "unknown profile key: step_limit")
	assert.Nil(profile)

	profile, err = LoadProfile(writeProfile(t, "[registers]\ne = 1\n"))
	assert.NoError(err)
	_, err = profile.Seed()
	assert.ErrorIs(err, cpu.ErrRegisterInvalid)
}

func TestParseSeed(t *testing.T) {
	assert := assert.New(t)

	seed := cpu.RegisterBank{1, 2, 3, 4}
	assert.NoError(parseSeed(&seed, ""))
	assert.Equal(cpu.RegisterBank{1, 2, 3, 4}, seed)

	assert.NoError(parseSeed(&seed, "a=7, c = -1,"))
	assert.Equal(cpu.RegisterBank{7, 2, -1, 4}, seed)

	table := map[string]error{
		"a":     cpu.ErrParseValue("a"),
		"e=1":   cpu.ErrRegisterInvalid,
		"b=0x1": cpu.ErrParseNumber("0x1"),
	}

	for text, expected := range table {
		err := parseSeed(&seed, text)
		assert.ErrorIs(err, expected, text)
	}
}
