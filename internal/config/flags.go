package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-tx-attempts attempts for retryable transactions
//	-cache-groups max client groups kept in the CVR cache
//	-cache-entries checkpoints kept per client group
//	-cache-ttl idle client group expiry (e.g., "30m")
//	-server client: server address
//	-sync-interval client: pull interval (e.g., "10s")
//	-client-group client: client group id
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("replisync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var maxTxAttempts int
	var cacheGroups, cacheEntries int
	var cacheTTL time.Duration
	var adapterAddress string
	var syncInterval time.Duration
	var clientGroupID string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxTxAttempts, "max-tx-attempts", 0, "Attempts for retryable transactions")
	fs.IntVar(&cacheGroups, "cache-groups", 0, "Max client groups kept in the CVR cache")
	fs.IntVar(&cacheEntries, "cache-entries", 0, "Checkpoints kept per client group")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Idle client group expiry (e.g., 30m)")
	fs.StringVar(&adapterAddress, "server", "", "Server address for the client")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client pull interval (e.g., 10s)")
	fs.StringVar(&clientGroupID, "client-group", "", "Client group id")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN:           databaseDSN,
				MaxTxAttempts: maxTxAttempts,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			MaxClientGroups: cacheGroups,
			EntriesPerGroup: cacheEntries,
			TTL:             cacheTTL,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Sync: Sync{
			ClientGroupID: clientGroupID,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
