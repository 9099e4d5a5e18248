// Package tokenize splits raw bytes into position-tagged words.
//
// A word is a maximal run of ASCII letters, digits, apostrophes and hyphens.
// Every other byte ends the current run; '\n' also moves the cursor to column 1
// of the next line. Lines and columns are 1-based and columns count bytes.
//
// A Tokenizer is fed a file chunk by chunk and keeps its cursor and any partly
// read word between calls, so chunk boundaries never split a word or reset the
// position. Stored word text is capped at the configured maximum length; the
// full run length is still recorded on the Token and still advances the column.
package tokenize
