// Package config loads the FORMCHECK_* settings from the environment and
// optional dotenv files.
package config
