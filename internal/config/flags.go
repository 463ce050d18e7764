// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-a Fineract API base URL
//	-tenant Fineract tenant identifier
//	-u / -p Fineract username / password
//	-mode online|offline
//	-d database DSN (SQLite path or postgres URL)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second sent to the server
//	-sync-interval background sync interval (e.g. "5m"), 0 disables
//	-metrics-address metrics server address in format [host]:[port]
//	-log-file path of the JSON log file
func ParseFlags() *StructuredConfig {
	var (
		serverURL      string
		tenant         string
		username       string
		password       string
		mode           string
		databaseDSN    string
		jsonConfigPath string
		requestTimeout time.Duration
		rateLimit      float64
		syncInterval   time.Duration
		metricsAddress NetAddress
		logFile        string
	)

	flag.StringVar(&serverURL, "a", "", "Fineract API base URL")
	flag.StringVar(&tenant, "tenant", "", "Fineract tenant identifier")
	flag.StringVar(&username, "u", "", "Fineract username")
	flag.StringVar(&password, "p", "", "Fineract password")
	flag.StringVar(&mode, "mode", "", "online or offline")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second sent to the server")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.Var(&metricsAddress, "metrics-address", "Metrics server address host:port")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Mode:    mode,
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			Tenant:         tenant,
			Username:       username,
			Password:       password,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		Metrics:      Metrics{Address: metricsAddress.String()},
		JSONFilePath: jsonConfigPath,
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
// An empty host means all interfaces. It validates the port range and checks
// IP correctness unless host is "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
