package main

// Exit codes
const (
	ExitSuccess          = 0 // Success
	ExitError            = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError      = 2 // Configuration error (invalid config, missing reactions file)
	ExitDataError        = 3 // Data error (malformed catalog, capacity exceeded)
	ExitCompoundNotFound = 4 // Start or end compound not in the graph
	ExitPathNotFound     = 5 // No conversion path between the compounds
)
