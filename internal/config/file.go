package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. Duration
// fields accept strings like "1h" or "30s".
type StructuredFileConfig struct {
	App struct {
		LogFile        string `json:"log_file" toml:"log_file" yaml:"log_file"`
		Version        string `json:"version" toml:"version" yaml:"version"`
		RecordIDPrefix string `json:"record_id_prefix" toml:"record_id_prefix" yaml:"record_id_prefix"`
	} `json:"app,omitempty" toml:"app" yaml:"app"`

	Ledger struct {
		RPCURL              string   `json:"rpc_url" toml:"rpc_url" yaml:"rpc_url"`
		ContractAddress     string   `json:"contract_address" toml:"contract_address" yaml:"contract_address"`
		ChainID             int64    `json:"chain_id" toml:"chain_id" yaml:"chain_id"`
		PrivateKey          string   `json:"private_key" toml:"private_key" yaml:"private_key"`
		SignerURL           string   `json:"signer_url" toml:"signer_url" yaml:"signer_url"`
		Account             string   `json:"account" toml:"account" yaml:"account"`
		SignerTimeout       Duration `json:"signer_timeout" toml:"signer_timeout" yaml:"signer_timeout"`
		ReceiptPollInterval Duration `json:"receipt_poll_interval" toml:"receipt_poll_interval" yaml:"receipt_poll_interval"`
	} `json:"ledger,omitempty" toml:"ledger" yaml:"ledger"`

	Relayer struct {
		HTTPAddress    string   `json:"address" toml:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" toml:"rate_limit" yaml:"rate_limit"`
		Burst          int      `json:"burst" toml:"burst" yaml:"burst"`
	} `json:"relayer,omitempty" toml:"relayer" yaml:"relayer"`

	Status struct {
		SuccessDelay Duration `json:"success_delay" toml:"success_delay" yaml:"success_delay"`
		ErrorDelay   Duration `json:"error_delay" toml:"error_delay" yaml:"error_delay"`
	} `json:"status,omitempty" toml:"status" yaml:"status"`

	Cache struct {
		FetchConcurrency int `json:"fetch_concurrency" toml:"fetch_concurrency" yaml:"fetch_concurrency"`
	} `json:"cache,omitempty" toml:"cache" yaml:"cache"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" toml:"server" yaml:"server"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" toml:"refresh_interval" yaml:"refresh_interval"`
	} `json:"workers,omitempty" toml:"workers" yaml:"workers"`
}

// parseFile decodes the config file at path, picking the decoder by file
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	var fileCfg StructuredFileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := decodeJSON(path, &fileCfg); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := decodeYAML(path, &fileCfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return fileCfg.toStructured(), nil
}

func decodeJSON(path string, out *StructuredFileConfig) error {
	jsonFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	if err := json.NewDecoder(jsonFile).Decode(out); err != nil {
		return fmt.Errorf("error decoding json configs: %w", err)
	}
	return nil
}

func decodeYAML(path string, out *StructuredFileConfig) error {
	yamlFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	if err := yaml.NewDecoder(yamlFile).Decode(out); err != nil {
		return fmt.Errorf("error decoding yaml configs: %w", err)
	}
	return nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:        f.App.LogFile,
			Version:        f.App.Version,
			RecordIDPrefix: f.App.RecordIDPrefix,
		},
		Ledger: Ledger{
			RPCURL:              f.Ledger.RPCURL,
			ContractAddress:     f.Ledger.ContractAddress,
			ChainID:             f.Ledger.ChainID,
			PrivateKey:          f.Ledger.PrivateKey,
			SignerURL:           f.Ledger.SignerURL,
			Account:             f.Ledger.Account,
			SignerTimeout:       time.Duration(f.Ledger.SignerTimeout),
			ReceiptPollInterval: time.Duration(f.Ledger.ReceiptPollInterval),
		},
		Relayer: Relayer{
			HTTPAddress:    f.Relayer.HTTPAddress,
			RequestTimeout: time.Duration(f.Relayer.RequestTimeout),
			RateLimit:      f.Relayer.RateLimit,
			Burst:          f.Relayer.Burst,
		},
		Status: Status{
			SuccessDelay: time.Duration(f.Status.SuccessDelay),
			ErrorDelay:   time.Duration(f.Status.ErrorDelay),
		},
		Cache: Cache{
			FetchConcurrency: f.Cache.FetchConcurrency,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(f.Workers.RefreshInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" in JSON, TOML and YAML. Plain numbers are nanoseconds.
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
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	value := strings.TrimSpace(string(text))
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got line %d", node.Line)
	}
	return d.UnmarshalText([]byte(node.Value))
}
