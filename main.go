package main

import (
	"tko-bootstrap/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// tko-bootstrap prepares a local machine to run the TKO Analytics dashboard:
//   - Verifies a Python 3 interpreter is installed and reports its version
//   - Creates (or reuses) an isolated virtual environment in .venv/
//   - Installs the requirements.txt manifest and the project package itself
//     through the environment's own pip, treating pip as a black box
//   - Generates a fresh .env with random secrets (identifier-pseudonymization
//     salt, session signing key), backing up any existing .env first
//
// Error handling strategy:
//   - Each fatal condition maps to a distinct, documented exit code so
//     wrapping scripts can tell a missing interpreter from a failed install
//   - No step is retried: every failure here (missing runtime, permissions,
//     network) needs operator action, after which the whole workflow can be
//     re-run safely from the start
func main() {
	cmd.Execute()
}
