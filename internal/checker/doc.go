// Package checker scans files for words missing from a dictionary.
//
// ScanFile reads a file in fixed-size chunks through a single tokenize.Tokenizer,
// so positions stay correct across chunk boundaries, checks each chunk's words
// as soon as the chunk is tokenized, and hands every miss to the caller's
// emit function in file order.
package checker
