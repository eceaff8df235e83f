// Package config provides configuration loading and defaults for tally.
package config

// DefaultListenAddr is the address the HTTP server binds to.
const DefaultListenAddr = "127.0.0.1:8484"

// DefaultDataDir is the default location for tally's data.
const DefaultDataDir = "~/.local/share/tally"

// DefaultConfigDir is the default location for tally configuration.
const DefaultConfigDir = "~/.config/tally"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "tally.db"

// DefaultSessionTTLHours is how long a session cookie stays valid.
const DefaultSessionTTLHours = 24 * 7

// DefaultCORSOrigins are the origins allowed to call the API with
// credentials.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// DefaultOutput holds the default CLI output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
