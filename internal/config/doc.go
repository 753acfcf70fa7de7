// Package config manages user-level settings stored at
// ~/.create-admin-app/config.yaml. Every key can also be supplied through an
// environment variable with the CREATE_ADMIN_APP_ prefix, which wins over the
// file. Settings select the package-manager and git binaries, the
// version-control backend, an optional on-disk template directory and the
// minimum supported Node version.
package config
