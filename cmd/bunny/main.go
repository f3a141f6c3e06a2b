// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/assembunny/cpu"
	"github.com/ezrec/assembunny/emulator"
)

func main() {
	var compile string
	var registers string
	var limit int
	var output string
	var profilePath string
	var unoptimized bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "assembunny file to run")
	flag.StringVar(&registers, "r", "", "Initial registers, ie 'a=7,c=1'")
	flag.IntVar(&limit, "l", emulator.STEP_LIMIT, "Step limit, 0 for none")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.StringVar(&profilePath, "f", "", "TOML run profile")
	flag.BoolVar(&unoptimized, "n", false, "Disable multiply fusion")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	profile := &Profile{}
	if len(profilePath) != 0 {
		var err error
		profile, err = LoadProfile(profilePath)
		if err != nil {
			log.Fatalf("%v: %v", profilePath, err)
		}
	}

	// Flags override the profile.
	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if !set["c"] {
		compile = profile.Program
	}
	if !set["l"] && profile.StepLimit != 0 {
		limit = profile.StepLimit
	}
	if !set["n"] {
		unoptimized = profile.Unoptimized
	}
	if !set["v"] {
		verbose = profile.Verbose
	}

	seed, err := profile.Seed()
	if err != nil {
		log.Fatalf("%v: %v", profilePath, err)
	}
	err = parseSeed(&seed, registers)
	if err != nil {
		log.Fatalf("-r: %v", err)
	}

	if len(compile) == 0 {
		log.Fatalf("%v: No program given", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Unoptimized = unoptimized
	emu.StepLimit = limit

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}
	for equ, value := range profile.Defines {
		asm.Predefine(equ, value)
	}

	emu.Program, err = asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	res, err := emu.Run(seed)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if output == "-" && emu.Tape.Written != 0 {
		fmt.Println()
	}
	fmt.Printf("%v (%v after %v ticks)\n", res.Registers, res.Halt, res.Ticks)
}
