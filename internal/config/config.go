// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/a-happin/zabbrev/internal/abbrev"
	"github.com/a-happin/zabbrev/internal/log"
)

// Document is the top-level shape of the YAML rules file: a single
// "abbrevs:" list, each entry decoded by abbrev.Rule's UnmarshalYAML.
type Document struct {
	Abbrevs []*abbrev.Rule `yaml:"abbrevs"`
}

// Load resolves the rules file path and parses it. zabbrev's entire
// configuration surface is the rule set, so a missing or unparsable file is
// always configuration-fatal; Load never swallows its error.
func Load() (Document, error) {
	path, err := Path()
	if err != nil {
		return Document{}, err
	}
	return LoadFile(path)
}

// LoadFile reads and parses the rules file at an explicit path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses rules from an in-memory YAML document. Exported mainly
// for tests, which build rule sets as inline YAML strings rather than
// fixture files.
func LoadBytes(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse config: %w", err)
	}
	return doc, nil
}

// Path finds the rules file without reading it. If the ZABBREV_CONFIG
// environment variable is set, it is treated as the full path to the file.
// Otherwise the OS-specific user configuration directory returned by
// os.UserConfigDir is used, with the filename "zabbrev/abbrevs.yaml".
// Exported so zabbrev list --watch can resolve the same path to watch.
func Path() (string, error) {
	if p := os.Getenv("ZABBREV_CONFIG"); p != "" {
		log.Debugf("using config file from ZABBREV_CONFIG: %s", p)
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	path := filepath.Join(dir, "zabbrev", "abbrevs.yaml")
	log.Debugf("using config file: %s", path)
	return path, nil
}
