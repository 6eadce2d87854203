// Package config manages user-level settings stored at ~/.create-rac/config.yaml.
// It exposes the npm registry used by the update check and the user-defined
// template entries that extend the built-in catalog. Every key can also be
// set through a CREATE_RAC_ prefixed environment variable.
package config
