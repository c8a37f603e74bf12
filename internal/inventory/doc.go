// Package inventory derives the visible subset of the vehicle stock from a
// status selector and a free-text query, and renders that subset as a
// spreadsheet-friendly CSV file or a printable PDF report.
//
// Everything here is a pure transformation over an in-memory slice; callers
// own the vehicle list and decide where the produced bytes go.
package inventory
