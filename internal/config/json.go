package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		Account         string   `json:"account"`
		ContractAddress string   `json:"contract_address"`
		SignerSecret    string   `json:"signer_secret"`
		PermitTTL       Duration `json:"permit_ttl"`
		HashKey         string   `json:"hash_key"`
		LogFile         string   `json:"log_file"`
	} `json:"app,omitempty"`

	Network struct {
		ChainID uint64 `json:"chain_id"`
	} `json:"network,omitempty"`

	Adapter struct {
		LedgerAddress            string   `json:"ledger_address"`
		RelayerAddress           string   `json:"relayer_address"`
		RequestTimeout           Duration `json:"request_timeout"`
		ConfirmationTimeout      Duration `json:"confirmation_timeout"`
		ConfirmationPollInterval Duration `json:"confirmation_poll_interval"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxPageCount int    `json:"max_page_count"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SignalsInterval    Duration `json:"signals_interval"`
		DecryptConcurrency int      `json:"decrypt_concurrency"`
	} `json:"workers,omitempty"`
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
		App: App{
			Account:         jsonCfg.App.Account,
			ContractAddress: jsonCfg.App.ContractAddress,
			SignerSecret:    jsonCfg.App.SignerSecret,
			PermitTTL:       time.Duration(jsonCfg.App.PermitTTL),
			HashKey:         jsonCfg.App.HashKey,
			LogFile:         jsonCfg.App.LogFile,
		},
		Network: Network{
			ChainID: jsonCfg.Network.ChainID,
		},
		Adapter: Adapter{
			LedgerAddress:            jsonCfg.Adapter.LedgerAddress,
			RelayerAddress:           jsonCfg.Adapter.RelayerAddress,
			RequestTimeout:           time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConfirmationTimeout:      time.Duration(jsonCfg.Adapter.ConfirmationTimeout),
			ConfirmationPollInterval: time.Duration(jsonCfg.Adapter.ConfirmationPollInterval),
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxPageCount: jsonCfg.Storage.DB.MaxPageCount,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SignalsInterval:    time.Duration(jsonCfg.Workers.SignalsInterval),
			DecryptConcurrency: jsonCfg.Workers.DecryptConcurrency,
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
