package mips

import (
	"regexp"
	"strconv"
	"strings"
)

// Config is the CPU configuration: clock frequency and per-class cycle
// weights, validated at load time.
type Config struct {
	Hz      float64       // Clock frequency in hertz. Strictly positive.
	Weights map[Class]int // Cycle weight overrides per class.
}

// Period returns the clock period in seconds.
func (config Config) Period() float64 {
	return 1.0 / config.Hz
}

var frequencyScale = map[string]float64{
	"hz":  1,
	"khz": 1e3,
	"mhz": 1e6,
	"ghz": 1e9,
}

var (
	frequencyPattern = regexp.MustCompile(`^([\d.]+)\s*([kmg]?hz)$`)
	weightPattern    = regexp.MustCompile(`^(i|j|r)\s*=\s*(\d+)$`)
)

var classOf = map[string]Class{
	"r": CLASS_R,
	"i": CLASS_I,
	"j": CLASS_J,
}

// ParseConfig parses config_cpu items. Each item is either a frequency
// token ("25MHz") or a weight token ("R=4"); unrecognized items are
// ignored. A missing or non-positive frequency is a configuration error.
func ParseConfig(items []string) (config Config, err error) {
	config.Weights = map[Class]int{
		CLASS_R: 1,
		CLASS_I: 1,
		CLASS_J: 1,
	}

	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))

		if m := frequencyPattern.FindStringSubmatch(item); m != nil {
			var value float64
			value, err = strconv.ParseFloat(m[1], 64)
			if err != nil {
				err = ErrInvalidConfig
				return
			}
			config.Hz = value * frequencyScale[m[2]]
			continue
		}

		if m := weightPattern.FindStringSubmatch(item); m != nil {
			weight, _ := strconv.Atoi(m[2])
			config.Weights[classOf[m[1]]] = weight
		}
	}

	if config.Hz <= 0 {
		err = ErrFrequencyMissing
		return
	}

	return
}
