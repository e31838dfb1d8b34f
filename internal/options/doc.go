// Package options holds the ledger options that decide which account
// names are legal.
//
// Every recognized option is described once in a static registry keyed by
// Key. A Config is a mutable snapshot of option values; the directive pass
// owns one Config and writes to it through Apply as option directives are
// encountered, so every later lookup sees exactly the writes made so far.
//
// Values are typed after validation:
//
//	name_*                 Text (an account root, e.g. "Actif")
//	account_previous_*     Text (components below the equity root)
//	account_current_*      Text
//	plugin_processing_mode ProcessingMode ("default" or "raw")
//
// The query functions GetAccountTypes, GetPreviousAccounts and
// GetCurrentAccounts derive account names from a snapshot without
// modifying it. ValidateOptions checks a whole snapshot at once, and
// ListOptions renders the registry as documentation.
package options
