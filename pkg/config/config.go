// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config implements the user configuration of crosstable, which
// is stored as YAML in the XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/crosstable/pkg/crosstable"
)

// File is the path of the configuration file relative to the XDG config
// directories.
var File = filepath.Join("crosstable", "config.yaml")

type Config struct {
	// Results file read when none is given on the command line.
	Input string `yaml:"input"`

	Format    string `yaml:"format"`    // One of crosstable.Formats.
	Precision int    `yaml:"precision"` // Digits after the decimal point.
	Order     string `yaml:"order"`     // appearance or natural.

	// Header names of the results file.
	Columns crosstable.Columns `yaml:"columns"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:     filepath.Join("results", "data.csv"),
		Format:    string(crosstable.FormatLaTeX),
		Precision: 1,
		Order:     string(crosstable.OrderAppearance),
		Columns:   crosstable.DefaultColumns,
	}
}

// Load reads the configuration file from the XDG config directories. If
// there is no such file, the default configuration is returned.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(File)
	if err != nil {
		logrus.Tracef("no configuration file: %v", err)
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads the configuration file at the given path. Keys missing
// from the file keep their default values.
func LoadFile(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	config := Default()
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	logrus.Debugf("loaded configuration from %s", path)
	return config, nil
}

// Validate checks that the format, order and precision are valid.
func (config Config) Validate() error {
	if _, err := crosstable.ParseFormat(config.Format); err != nil {
		return err
	}

	if _, err := crosstable.ParseOrder(config.Order); err != nil {
		return err
	}

	if config.Precision < 0 {
		return fmt.Errorf("negative precision %d", config.Precision)
	}

	return nil
}

// Options returns the rendering options described by the configuration.
// The configuration must be valid.
func (config Config) Options() crosstable.Options {
	return crosstable.Options{
		Format:    crosstable.Format(config.Format),
		Precision: config.Precision,
		Columns:   config.Columns,
	}
}

// Dump returns the configuration as YAML.
func (config Config) Dump() (string, error) {
	out, err := yaml.Marshal(config)
	return string(out), err
}
