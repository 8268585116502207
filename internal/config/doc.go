// Package config loads and validates the runtime configuration of the
// notes API.
//
// Configuration is read from the process environment (with struct tags from
// caarlos0/env) and merged over built-in defaults via mergo. The main entry
// point is [GetConfig], which either returns a complete configuration or a
// startup-fatal error naming every missing required variable.
package config
