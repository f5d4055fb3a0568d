package main

import (
	"time"

	"github.com/apex/log"
	"github.com/gspinelli/gskit/server"
)

// serverConfig creates the server configuration.
func (m mainFlags) serverConfig() server.Config {
	cfg := server.Config{
		Port:     m.port,
		StopDur:  time.Duration(m.stopSec) * time.Second,
		CacheSec: m.cacheSec,
		Channels: m.channelNames(),
	}
	return cfg
}

// logLevel is the minimum level of messages that are logged.
func (m mainFlags) logLevel() log.Level {
	if m.debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
