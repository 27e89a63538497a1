package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags declares every configuration flag on fs. The CLI registers
// them as persistent flags of the root command.
//
// Flags:
//
//	-a/--address            report server address in format [host]:[port]
//	--account               wallet account address
//	--contract              ledger service address
//	--signer-secret         decryption permit secret
//	--hash-key              request integrity hash key
//	--chain-id              designated network id
//	--ledger-url            ledger gateway base URL
//	--relayer-url           relayer base URL
//	--request-timeout       outbound request timeout (e.g. "15s")
//	-d/--dsn                snapshot cache database file
//	--log-file              log file path
//	-c/--config             json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, "address", "a", "Report server address host:port")
	fs.String("account", "", "Wallet account address")
	fs.String("contract", "", "Ledger service address")
	fs.String("signer-secret", "", "Decryption permit secret")
	fs.String("hash-key", "", "Request integrity hash key")
	fs.Uint64("chain-id", 0, "Designated network id")
	fs.String("ledger-url", "", "Ledger gateway base URL")
	fs.String("relayer-url", "", "Relayer base URL")
	fs.Duration("request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.StringP("dsn", "d", "", "Snapshot cache database file")
	fs.String("log-file", "", "Log file path")
	fs.StringP("config", "c", "", "JSON config file path")
}

// ParseFlags reads the flags declared by [RegisterFlags] from an already
// parsed flag set. Flags that were never declared are treated as unset.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		if fs.Lookup(name) == nil {
			return ""
		}
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}

	cfg := &StructuredConfig{
		App: App{
			Account:         str("account"),
			ContractAddress: str("contract"),
			SignerSecret:    str("signer-secret"),
			HashKey:         str("hash-key"),
			LogFile:         str("log-file"),
		},
		Adapter: Adapter{
			LedgerAddress:  str("ledger-url"),
			RelayerAddress: str("relayer-url"),
		},
		Storage: Storage{
			DB: DB{DSN: str("dsn")},
		},
		JSONFilePath: str("config"),
	}

	if f := fs.Lookup("address"); f != nil {
		cfg.Server.HTTPAddress = f.Value.String()
	}
	if fs.Lookup("chain-id") != nil {
		chainID, err := fs.GetUint64("chain-id")
		errs = append(errs, err)
		cfg.Network.ChainID = chainID
	}
	if fs.Lookup("request-timeout") != nil {
		timeout, err := fs.GetDuration("request-timeout")
		errs = append(errs, err)
		cfg.Adapter.RequestTimeout = timeout
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
