package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type serverBuilder struct {
	configs []*ServerConfig
	err     error
}

func newServerBuilder() *serverBuilder {
	return &serverBuilder{
		configs: make([]*ServerConfig, 0, 3),
	}
}

func (b *serverBuilder) build() (*ServerConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(ServerConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *serverBuilder) withEnv() *serverBuilder {
	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *serverBuilder) withFlags() *serverBuilder {
	b.configs = append(b.configs, ParseServerFlags())
	return b
}

func (b *serverBuilder) withDefaults() *serverBuilder {
	b.configs = append(b.configs, serverDefaults())
	return b
}

type trayBuilder struct {
	configs []*TrayConfig
	err     error
}

func newTrayBuilder() *trayBuilder {
	return &trayBuilder{
		configs: make([]*TrayConfig, 0, 4),
	}
}

func (b *trayBuilder) build() (*TrayConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(TrayConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *trayBuilder) withEnv() *trayBuilder {
	wrapper := &trayEnvWrapper{}
	if err := parseEnv(wrapper); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &wrapper.Tray)
	return b
}

func (b *trayBuilder) withFlags() *trayBuilder {
	b.configs = append(b.configs, ParseTrayFlags())
	return b
}

// withFile loads the legacy key=value config file. The path is taken from
// whichever earlier source set ConfigPath, falling back to the default
// location in the user's home directory. A missing file is not an error.
func (b *trayBuilder) withFile() *trayBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.ConfigPath != "" {
			path = cfg.ConfigPath
			break
		}
	}
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		path = defaultPath
	}

	fileCfg, err := parseLegacyFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileCfg != nil {
		b.configs = append(b.configs, fileCfg)
	}

	return b
}

func (b *trayBuilder) withDefaults() *trayBuilder {
	b.configs = append(b.configs, trayDefaults())
	return b
}
