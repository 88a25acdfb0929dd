// Package parser reads string fields out of structured manifest files
// (TOML, JSON, YAML) using dot-notation paths such as "package.version".
package parser
