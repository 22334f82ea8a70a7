// Package config manages the ~/.optihub/ configuration file via Viper,
// plus resolution of the registry manifest path and upstream URL from
// environment variables, config keys, and branding defaults.
package config
