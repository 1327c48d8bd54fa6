// Package config reads the YAML settings that describe a likelihood grid:
// where the .npy file lives, how each parameter maps to an axis and which
// physical range it samples, which reduction to apply, and the level-search
// tolerances.
//
// Every recognised option is a field of Settings with a documented default
// (Default). Unknown keys are rejected.
package config
