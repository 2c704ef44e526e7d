// Package config loads engine.Params from a YAML file using the same
// viper-reads-then-yaml-remarshals envelope the reinforcement trainer used
// for its own TrainingConfig: an outer {kind, def} wrapper lets one file
// format host several differently-shaped inner configs, selected by kind.
package config

import (
	"fmt"
	"path/filepath"

	"stonesgems/engine"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// OuterConfig is the {kind, def} envelope every config file is wrapped in.
type OuterConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// EngineConfig mirrors engine.Params in YAML-friendly field names, plus the
// init string identifying which grid to load. The tags are lowercase because
// viper lowercases every key it reads, so the re-marshaled def map carries
// "initgrid", "magicwallsteps", etc. whatever case the file used.
type EngineConfig struct {
	InitGrid          string  `yaml:"initgrid"`
	MagicWallSteps    int     `yaml:"magicwallsteps"`
	BlobChance        float64 `yaml:"blobchance"`
	BlobMaxPercentage float64 `yaml:"blobmaxpercentage"`
	Seed              int64   `yaml:"seed"`
	ObsShowIDs        bool    `yaml:"obsshowids"`
}

const engineKind = "engine"

// Load reads path, expecting a top-level kind "engine", and returns the
// grid init string plus the engine.Params it describes.
func Load(path string) (initGrid string, params engine.Params, err error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err = vp.ReadInConfig(); err != nil {
		return "", engine.Params{}, err
	}

	outer := &OuterConfig{}
	if err = vp.Unmarshal(outer); err != nil {
		return "", engine.Params{}, err
	}
	if outer.Kind != engineKind {
		return "", engine.Params{}, fmt.Errorf("config: unsupported kind %q, want %q", outer.Kind, engineKind)
	}

	var spec []byte
	if spec, err = yaml.Marshal(outer.Def); err != nil {
		return "", engine.Params{}, err
	}

	cfg := &EngineConfig{}
	if err = yaml.Unmarshal(spec, cfg); err != nil {
		return "", engine.Params{}, err
	}

	p := engine.DefaultParams()
	if cfg.MagicWallSteps > 0 {
		p.MagicWallSteps = cfg.MagicWallSteps
	}
	if cfg.BlobChance > 0 {
		p.BlobChance = cfg.BlobChance
	}
	if cfg.BlobMaxPercentage > 0 {
		p.BlobMaxPercentage = cfg.BlobMaxPercentage
	}
	if cfg.Seed != 0 {
		p.Seed = cfg.Seed
	}
	p.ObsShowIDs = cfg.ObsShowIDs

	return cfg.InitGrid, p, nil
}
