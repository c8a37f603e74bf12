// Package commands wires the revenda command line: the interactive back
// office (root command), headless inventory export, and password setup.
package commands
