// Package dataprocessing contains the transform stages of the CNJ
// health-litigation pipeline: CSV parsing, subject-code filtering,
// column projection and frequency analysis.
//
// All stages are pure transforms over the dynamic Table model; they
// never touch the filesystem. Discovery lives in internal/files,
// archive handling in internal/archive and persistence in
// internal/exporter.
package dataprocessing
