package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type (
	Configuration struct {
		Server     ServerConfiguration `json:"server"`
		Root       string              `json:"root"`
		Production bool                `json:"production"`
		Htpasswd   string              `json:"htpasswd,omitempty"`
	}

	ServerConfiguration struct {
		Port int `json:"port"`
	}
)

func Load(path string) (Configuration, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	d := json.NewDecoder(f)

	var c Configuration
	err = d.Decode(&c)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to parse configuration file (%s): %w", path, err)
	}

	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}

	return c, nil
}
