// Package main hosts the spchk command-line spell checker.
//
// spchk loads a dictionary word list and checks every file named on the
// command line, plus every matching file below any directory named there,
// printing one "<file> (<line>,<col>): <word>" line per unknown word. The
// Cobra root command owns flag parsing and configuration resolution; the work
// itself lives in the internal dictionary, checker and walker packages.
package main
