// meta/meta.go
package meta

// GOROUTINES bounds how many searches a solve runs at once.
const GOROUTINES = 8

// EXPANSION_LIMIT caps expansions per search; zero leaves searches unbounded.
const EXPANSION_LIMIT = 0

// INPUT_DIR holds the puzzle inputs, one <puzzle>.txt or <puzzle>-<part>.txt each.
const INPUT_DIR = "input"

// METRICS_DIR receives experiment records.
const METRICS_DIR = "experiments"

const LOG_LEVEL = "warn"

const ENV_PREFIX = "PUZZLESEARCH"
