// --------------------------------------------------------------------------------
// Author: Giovanna Cardenas
//
// This file is part of a software project developed by Giovanna Cardenas.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Corpus struct {
		// Source selects the corpus loader: dir, archive, csv or postgres.
		Source string `yaml:"source"`
		Path   string `yaml:"path"`
		// Marker labels a document 1 when its path contains this substring.
		Marker string `yaml:"marker"`
		Table  string `yaml:"table"`
	} `yaml:"corpus"`
	Pipeline struct {
		Concepts     int     `yaml:"concepts"`
		Trees        int     `yaml:"trees"`
		TestFraction float64 `yaml:"test_fraction"`
		Seed         int64   `yaml:"seed"`
	} `yaml:"pipeline"`
	DBCreds struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
	} `yaml:"db_creds"`
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %v", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Corpus.Source == "" {
		c.Corpus.Source = "dir"
	}
	if c.Corpus.Marker == "" {
		c.Corpus.Marker = "rec.autos"
	}
	if c.Pipeline.Concepts == 0 {
		c.Pipeline.Concepts = 10
	}
	if c.Pipeline.Trees == 0 {
		c.Pipeline.Trees = 100
	}
	if c.Pipeline.TestFraction == 0 {
		c.Pipeline.TestFraction = 0.4
	}
}
