// Package config loads YAML configuration for the finnhub-data tools.
//
// Config files may reference environment variables with ${VAR} syntax;
// the token is normally supplied as ${FINNHUB_TOKEN} so it never lives
// in the file itself.
package config
