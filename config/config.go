// Package config loads the parameters of a cloth simulation run.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const prefix = "CLOTH_"

type Config struct {
	SegmentLength   float64
	TensileStrength float64
	Iterations      int
	Damping         float64
	Gravity         [3]float64
	Jitter          float64
	Seed            int64
	Ticks           int

	// Outline is the cloth's boundary, counter-clockwise.
	Outline [][2]float64
	// Pinned lists vertex indices held in place.
	Pinned []int
}

func Default() Config {
	return Config{
		SegmentLength:   1,
		TensileStrength: 1,
		Iterations:      6,
		Damping:         0.01,
		Gravity:         [3]float64{0, -0.01, 0},
		Jitter:          0.5,
		Seed:            1,
		Ticks:           120,
		Outline:         [][2]float64{{0, 10}, {10, 10}, {10, 20}, {0, 20}},
		Pinned:          []int{2, 3},
	}
}

// Load starts from Default, applies the values in the dotenv file at path
// (skipped when path is empty) and then any CLOTH_ variables set in the
// environment.
func Load(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		values = read
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}
	return parse(lookup)
}

func parse(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	float := func(key string, dst *float64) {
		v, ok := lookup(prefix + key)
		if !ok || err != nil {
			return
		}
		f, perr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if perr != nil {
			err = fmt.Errorf("config: %s%s: %w", prefix, key, perr)
			return
		}
		*dst = f
	}
	integer := func(key string, dst *int64) {
		v, ok := lookup(prefix + key)
		if !ok || err != nil {
			return
		}
		i, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if perr != nil {
			err = fmt.Errorf("config: %s%s: %w", prefix, key, perr)
			return
		}
		*dst = i
	}

	iterations := int64(cfg.Iterations)
	ticks := int64(cfg.Ticks)

	float("SEGMENT_LENGTH", &cfg.SegmentLength)
	float("TENSILE_STRENGTH", &cfg.TensileStrength)
	float("DAMPING", &cfg.Damping)
	float("JITTER", &cfg.Jitter)
	float("GRAVITY_X", &cfg.Gravity[0])
	float("GRAVITY_Y", &cfg.Gravity[1])
	float("GRAVITY_Z", &cfg.Gravity[2])
	integer("ITERATIONS", &iterations)
	integer("TICKS", &ticks)
	integer("SEED", &cfg.Seed)
	if err != nil {
		return Config{}, err
	}
	cfg.Iterations = int(iterations)
	cfg.Ticks = int(ticks)

	if v, ok := lookup(prefix + "OUTLINE"); ok {
		if cfg.Outline, err = ParseOutline(v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(prefix + "PINNED"); ok {
		if cfg.Pinned, err = ParseIndices(v); err != nil {
			return Config{}, err
		}
	}

	if cfg.SegmentLength <= 0 {
		return Config{}, fmt.Errorf("config: %sSEGMENT_LENGTH must be positive, got %v", prefix, cfg.SegmentLength)
	}
	if cfg.Iterations < 0 || cfg.Ticks < 0 {
		return Config{}, fmt.Errorf("config: %sITERATIONS and %sTICKS must not be negative", prefix, prefix)
	}
	return cfg, nil
}

// ParseOutline reads points written as "x,y;x,y;...".
func ParseOutline(s string) ([][2]float64, error) {
	var points [][2]float64
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("config: outline point %q is not x,y", pair)
		}
		var p [2]float64
		for i := range xy {
			f, err := strconv.ParseFloat(strings.TrimSpace(xy[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("config: outline point %q: %w", pair, err)
			}
			p[i] = f
		}
		points = append(points, p)
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("config: outline needs at least 3 points, got %d", len(points))
	}
	return points, nil
}

// ParseIndices reads a comma separated list of vertex indices.
func ParseIndices(s string) ([]int, error) {
	var indices []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("config: vertex index %q: %w", f, err)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
