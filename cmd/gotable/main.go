// Package main provides gotable, a viewer for CSV files and SQLite queries.
//
// Usage:
//
//	gotable view [flags] [file]     Browse a sheet in the terminal
//	gotable gui [flags] [file]      Browse a sheet in a window
//	gotable print [flags] [file]    Print a sheet once
//	gotable html [flags] [file]     Export a sheet as an HTML page
//	gotable help                    Show help
//
// Examples:
//
//	gotable view people.csv
//	gotable view -watch -config table.toml
//	gotable print -width 120 people.csv
//	gotable html -o people.html -query "select * from people" people.db
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gotable - table viewer for CSV files and SQLite queries

Usage:
  gotable <command> [flags] [file]

Commands:
  view        Browse a sheet in the terminal
  gui         Browse a sheet in a window
  print       Print a sheet once to stdout
  html        Export a sheet as an HTML page
  version     Print version information
  help        Show this help message

Flags (all commands):
  -config     TOML configuration file
  -query      SQL query for SQLite sources
  -axis       vertical or horizontal record layout
  -border     single, double, thick, ascii or none
  -watch      Reload when the file changes (view, gui)
  -debug      Write a debug log to this file

Examples:
  gotable view people.csv
  gotable view -watch -config table.toml
  gotable print -width 120 people.csv
  gotable html -o people.html -query "select * from people" people.db
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "view":
		if err := runView(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "gui":
		if err := runGUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "print":
		if err := runPrint(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "html":
		if err := runHTML(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gotable version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
