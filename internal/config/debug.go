package config

import "os"

func IsDebug() bool {
	return os.Getenv("SMARTMATCH_DEBUG") == "1"
}
