// Package config loads the TOML configuration of the grid viewer.
//
// The [grid] table is kept untyped and handed to the grid engine, which
// normalizes whatever it finds; the other sections decode into typed structs.
// Keys the file sets but the program does not know are collected as warnings.
package config
