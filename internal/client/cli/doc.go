// Package cli is the interactive terminal client of the art marketplace.
//
// It wires configuration, the local SQLite store, the directory client and
// the core services, then runs a read-eval-print loop. A background watcher
// pings the directory service and switches the prompt between online and
// offline mode.
//
// Commands available to everyone: help, register, login, list [query],
// show <id>, artists, artist <id>, exit. Logged-in users also get sell,
// buy <id>, listings, purchases, report <id> and logout. Admins get
// reports, resolve <id> <status>, rmreport <id>, rmartwork <id>,
// rmartist <id>, rmuser <id> and stats.
package cli
