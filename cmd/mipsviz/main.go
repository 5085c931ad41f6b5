package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/mipsviz/console"
	"github.com/ezrec/mipsviz/simulator"
)

func main() {
	var batch bool
	var memorySize int
	var maxSteps int
	var verbose bool

	flag.BoolVar(&batch, "b", false, "Batch mode: run to completion, print final state only")
	flag.IntVar(&memorySize, "m", 0, "Data memory size in bytes (0 for default)")
	flag.IntVar(&maxSteps, "n", 0, "Maximum instructions to execute (0 for unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one source file argument", os.Args[0])
	}

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	sim, err := simulator.Load(inf, memorySize)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	sim.Verbose = verbose

	if batch {
		_, err = sim.Run(maxSteps)
		if err != nil {
			log.Fatal(err)
		}
		console.RenderFinal(os.Stdout, sim.FinalState())
		return
	}

	stepper := console.NewStepper()
	err = stepper.Start()
	if err != nil {
		log.Fatalf("%v: terminal: %v", os.Args[0], err)
	}
	defer stepper.Stop()

	steps := 0
	for {
		done, err := sim.Step()
		if err != nil {
			stepper.Stop()
			log.Fatal(err)
		}
		if done {
			break
		}

		console.Render(os.Stdout, sim.State())

		steps++
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		if !stepper.Wait() {
			break
		}
	}

	stepper.Stop()
	console.RenderFinal(os.Stdout, sim.FinalState())
}
