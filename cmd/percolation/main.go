// Command percolation estimates the site-percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// Usage:
//
//	percolation stats N T [--variant wqu,qf] [--workers W] [--seed S]
//	percolation simulate N [--variant wqu] [--seed S] [--draws K]
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
