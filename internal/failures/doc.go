// Package failures classifies the errors a spell-check run can hit.
//
// Only a dictionary that cannot be loaded (and bad invocation) is fatal. Open
// and stat failures on input files and directories are reported once and the
// affected file or subtree is skipped. Message renders the exact line the CLI
// writes to stderr for each class.
package failures
