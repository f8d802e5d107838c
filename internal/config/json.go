package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	Consul struct {
		Address        string   `json:"address"`
		StatusPath     string   `json:"status_path"`
		KVPath         string   `json:"kv_path"`
		Keys           []string `json:"keys"`
		JWKSKey        string   `json:"jwks_key"`
		VersionKey     string   `json:"version_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"consul,omitempty"`

	Files struct {
		WorkingDir string `json:"working_dir"`
		JWKS       string `json:"jwks"`
		Version    string `json:"version"`
	} `json:"files,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Consul: Consul{
			Address:        jsonCfg.Consul.Address,
			StatusPath:     jsonCfg.Consul.StatusPath,
			KVPath:         jsonCfg.Consul.KVPath,
			Keys:           jsonCfg.Consul.Keys,
			JWKSKey:        jsonCfg.Consul.JWKSKey,
			VersionKey:     jsonCfg.Consul.VersionKey,
			RequestTimeout: time.Duration(jsonCfg.Consul.RequestTimeout),
		},
		Files: Files{
			WorkingDir: jsonCfg.Files.WorkingDir,
			JWKS:       jsonCfg.Files.JWKS,
			Version:    jsonCfg.Files.Version,
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
