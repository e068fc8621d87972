// Package config loads runtime settings for the friendsdir terminal client.
//
// Sources are applied in order, later ones winning:
//  1. Defaults (LoadDefaults).
//  2. A .env file and FRIENDSDIR_* environment variables.
//  3. A JSON file named by -c or -config.
//  4. Command-line flags.
//
// # JSON
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "local_db_path": "friendsdir.db",
//	  "request_timeout": "10s"
//	}
//
// Durations accept Go duration strings or integer nanoseconds.
//
// # Environment
//
//	FRIENDSDIR_SERVER_URL, FRIENDSDIR_LOCAL_DB, FRIENDSDIR_REQUEST_TIMEOUT,
//	FRIENDSDIR_CLIENT_LOG_LEVEL
//
// # Flags
//
//	-a string   server base URL
//	-f string   path of the local SQLite file
//	-t int      request timeout, seconds
package config
