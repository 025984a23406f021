package config

import "os"

func IsDebug() bool {
	return os.Getenv("TALLY_DEBUG") == "1"
}
