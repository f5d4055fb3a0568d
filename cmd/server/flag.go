package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	environmentVariablePort        = "PORT"
	environmentVariableStaticDir   = "STATIC_DIR"
	environmentVariableChannels    = "CHANNELS"
	environmentVariableStopSeconds = "STOP_SECONDS"
	environmentVariableCacheSec    = "CACHE_SECONDS"
	environmentVariableDebug       = "DEBUG"
)

// mainFlags are the configuration options which can be easly configured at run startup for different environments.
type mainFlags struct {
	port      int
	staticDir string
	channels  string
	stopSec   int
	cacheSec  int
	debug     bool
}

const (
	defaultPort      = 8000
	defaultStaticDir = "static"
	defaultChannels  = "general,random,announcements"
	defaultStopSec   = 5
	defaultCacheSec  = 60 * 60 // 1 hour
)

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePort,
		environmentVariableStaticDir,
		environmentVariableChannels,
		environmentVariableStopSeconds,
		environmentVariableCacheSec,
		environmentVariableDebug,
	}
	fmt.Fprintf(fs.Output(), "Runs the demo server\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key, defaultValue string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return defaultValue
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key, "")
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	envPresent := func(key string) bool {
		_, ok := osLookupEnvFunc(key)
		return ok
	}
	fs.IntVar(&m.port, "port", envValueInt(environmentVariablePort, defaultPort), "The TCP port for server http requests.")
	fs.StringVar(&m.staticDir, "static-dir", envValue(environmentVariableStaticDir, defaultStaticDir), "The directory of the static files, such as index.html, main.wasm, and wasm_exec.js.")
	fs.StringVar(&m.channels, "channels", envValue(environmentVariableChannels, defaultChannels), "The comma-separated channel names returned by the /channels endpoint.")
	fs.IntVar(&m.stopSec, "stop-sec", envValueInt(environmentVariableStopSeconds, defaultStopSec), "The maximum number of seconds the server takes to shut down.")
	fs.IntVar(&m.cacheSec, "cache-sec", envValueInt(environmentVariableCacheSec, defaultCacheSec), "The number of seconds static assets are cached, such as main.wasm.")
	fs.BoolVar(&m.debug, "debug", envPresent(environmentVariableDebug), "Logs each request and other debug messages.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) (*mainFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc)
	if err := fs.Parse(programArgs); err != nil {
		return nil, err
	}
	return &m, nil
}

// channelNames splits the comma-separated channels, ignoring blank names.
func (m mainFlags) channelNames() []string {
	var names []string
	for _, name := range strings.Split(m.channels, ",") {
		name = strings.TrimSpace(name)
		if len(name) != 0 {
			names = append(names, name)
		}
	}
	return names
}
