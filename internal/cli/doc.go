// Package cli implements the provision command-line tool.
//
// The tool renders provisioning payloads locally; it never contacts the
// provisioning API. Subcommands:
//
//	new-user     build a payload creating an active user
//	update-user  build a payload from any subset of user fields
//	render       build a document of a named type from text (file or stdin)
//	types        list the document types of the configured format
//	help         print usage
//
// Passwords are read from the terminal without echo unless given with
// -password, and only their digest reaches the output.
package cli
