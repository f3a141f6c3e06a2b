package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/assembunny/cpu"
	"github.com/ezrec/assembunny/translate"
)

var f = translate.From

// Profile is a TOML run profile.
//
//	program = "clock.bunny"
//	step-limit = 100000
//
//	[registers]
//	a = 182
//
//	[defines]
//	BASE = "2541"
type Profile struct {
	Program     string            `toml:"program"`
	StepLimit   int               `toml:"step-limit"`
	Unoptimized bool              `toml:"unoptimized"`
	Verbose     bool              `toml:"verbose"`
	Registers   map[string]int64  `toml:"registers"`
	Defines     map[string]string `toml:"defines"`
}

var ErrProfileKey = errors.New(f("unknown profile key"))

// LoadProfile decodes a run profile. Unknown keys are an error.
func LoadProfile(path string) (profile *Profile, err error) {
	profile = &Profile{}

	meta, err := toml.DecodeFile(path, profile)
	if err != nil {
		profile = nil
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		profile = nil
		err = fmt.Errorf("%v: %w: %v", path, ErrProfileKey, undecoded[0])
		return
	}

	return
}

// Seed returns the initial register bank of the profile.
func (profile *Profile) Seed() (seed cpu.RegisterBank, err error) {
	for name, value := range profile.Registers {
		var reg cpu.Register
		reg, err = cpu.ParseRegister(name)
		if err != nil {
			err = fmt.Errorf("registers.%v: %w", name, err)
			return
		}
		seed.Set(reg, value)
	}

	return
}

// parseSeed updates seed from a "a=7,c=-1" style list.
func parseSeed(seed *cpu.RegisterBank, text string) (err error) {
	for item := range strings.SplitSeq(text, ",") {
		item = strings.TrimSpace(item)
		if len(item) == 0 {
			continue
		}

		name, value, ok := strings.Cut(item, "=")
		if !ok {
			err = cpu.ErrParseValue(item)
			return
		}

		var reg cpu.Register
		reg, err = cpu.ParseRegister(strings.TrimSpace(name))
		if err != nil {
			err = fmt.Errorf("%v: %w", item, err)
			return
		}

		var n int64
		n, err = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			err = cpu.ErrParseNumber(value)
			return
		}

		seed.Set(reg, n)
	}

	return
}
