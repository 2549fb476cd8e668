// Package commands implements the hunter CLI.
//
// Available commands:
//
//	domain-search  - list email addresses found for a domain or company
//	email-finder   - find the most likely email address of a person
//	email-verifier - check the deliverability of an email address
//	email-count    - count email addresses known for a domain (no API key needed)
//	account        - show account details and quota usage
//	leads          - manage leads (list, get, create, update, delete)
//	leads-lists    - manage leads lists (list, get, create, update, delete)
//	version        - print the CLI version
package commands
