// Package config defines the format-agnostic workload model for graphwalk,
// along with the Loader interface used to read it from files.
//
// A workload declares named graphs, named ancestry edge lists, the queries
// to run against them and optional social network simulations. The
// config.Model is the single source of truth for the app package. Concrete
// loaders, such as for HCL and YAML, live in separate packages.
package config
