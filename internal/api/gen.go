// Package api contains the request and response types generated from the
// OpenAPI document at api/openapi.yml.
package api

//go:generate go tool oapi-codegen -config cfg.yaml ../../api/openapi.yml
