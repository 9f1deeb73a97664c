package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

const (
	sourceEnv   = "env"
	sourceFlags = "flags"
	sourceJSON  = "json"
)

type configSource struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder collects config sources in precedence order. Sources added
// later win field by field.
type configBuilder struct {
	sources []configSource
	errs    []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]configSource, 0, 3),
	}
}

// add records a loaded source, or the error that prevented loading it.
func (b *configBuilder) add(name string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s source: %w", name, err))
		return b
	}

	b.sources = append(b.sources, configSource{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("error building config: %w", errors.Join(b.errs...))
	}

	config := new(StructuredConfig)
	for _, source := range b.sources {
		if err := mergo.Merge(config, source.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", source.name, err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := new(StructuredConfig)
	return b.add(sourceEnv, envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(sourceFlags, ParseFlags(), nil)
}

// withFlagValues adds flags that were parsed by a command tree instead of
// flag.Parse.
func (b *configBuilder) withFlagValues(values *FlagValues) *configBuilder {
	return b.add(sourceFlags, values.Config(), nil)
}

// withJSON loads the file named by the highest-precedence source that sets
// JSONFilePath. Without one it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.jsonFilePath()
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	return b.add(sourceJSON, jsonCfg, err)
}

func (b *configBuilder) jsonFilePath() string {
	for i := len(b.sources) - 1; i >= 0; i-- {
		if path := b.sources[i].cfg.JSONFilePath; path != "" {
			return path
		}
	}
	return ""
}
