package config

import (
	"errors"
	"flag"
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

// FlagValues receives the configuration flags declared by [BindFlags].
// Its fields are filled by whoever parses the flag set.
type FlagValues struct {
	serverAddress  NetAddress
	storageDriver  string
	databaseDSN    string
	sqlitePath     string
	jsonConfigPath string
	requestTimeout time.Duration
	logLevel       string
	rateLimit      float64
	rateBurst      int
	metricsEnabled bool
	serverURL      string
}

// BindFlags declares all configuration flags on fs.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-storage storage driver (memory, postgres, sqlite)
//	-d database DSN
//	-sqlite sqlite database file
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-rate-limit requests per second, 0 disables
//	-rate-burst rate limiter burst
//	-metrics expose prometheus metrics
//	-server-url relay base url used by the client
func BindFlags(fs *flag.FlagSet) *FlagValues {
	v := new(FlagValues)

	fs.Var(&v.serverAddress, "a", "Net address host:port")
	fs.StringVar(&v.storageDriver, "storage", "", "Storage driver: memory, postgres or sqlite")
	fs.StringVar(&v.databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&v.sqlitePath, "sqlite", "", "SQLite database file")
	fs.StringVar(&v.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&v.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level")
	fs.Float64Var(&v.rateLimit, "rate-limit", 0, "Requests per second, 0 disables rate limiting")
	fs.IntVar(&v.rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.BoolVar(&v.metricsEnabled, "metrics", false, "Expose Prometheus metrics on /metrics")
	fs.StringVar(&v.serverURL, "server-url", "", "Relay base URL used by the client")

	return v
}

// ParseFlags binds the configuration flags to flag.CommandLine and parses
// the process arguments.
func ParseFlags() *StructuredConfig {
	values := BindFlags(flag.CommandLine)
	flag.Parse()

	return values.Config()
}

// Config converts the parsed flag values to a config source.
func (v *FlagValues) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: v.logLevel,
		},
		Storage: Storage{
			Driver: v.storageDriver,
			DB: DB{
				DSN: v.databaseDSN,
			},
			SQLite: SQLite{
				Path: v.sqlitePath,
			},
		},
		Server: Server{
			HTTPAddress:    v.serverAddress.String(),
			RequestTimeout: v.requestTimeout,
			RateLimit:      v.rateLimit,
			RateBurst:      v.rateBurst,
			MetricsEnabled: v.metricsEnabled,
		},
		Adapter: Adapter{
			HTTPAddress:    v.serverURL,
			RequestTimeout: v.requestTimeout,
		},
		JSONFilePath: v.jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
