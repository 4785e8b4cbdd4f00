package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "ghostledger.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "ghostledger.log"
	defaultErrLogFilename = "ghostledger_err.log"
	appName               = "ghostledger"
)

var (
	// DefaultAppDir is the default home directory for ghostledger.
	DefaultAppDir = appDataDir(appName)

	defaultConfigFile = filepath.Join(DefaultAppDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(DefaultAppDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(DefaultAppDir, defaultLogDirname)
)

// Flags defines the configuration options for ghostledger.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir      string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir       string `long:"logdir" description:"Directory to log output."`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	InMemory     bool   `long:"inmemory" description:"Keep the ledger in memory instead of the data directory"`
	ScenarioFile string `short:"f" long:"scenario" description:"JSON file of accounts and blocks to import before executing the blue chain"`
	NetworkFlags
}

// Config defines the configuration options for ghostledger.
type Config struct {
	*Flags
}

// LogFile returns the path of the main log file
func (cfg *Config) LogFile() string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the log file that receives warnings and errors only
func (cfg *Config) ErrLogFile() string {
	return filepath.Join(cfg.LogDir, defaultErrLogFilename)
}

// appDataDir returns the per-user directory of the application: a capitalized
// directory under the user's AppData on Windows, a dot-prefixed one in the
// user's home everywhere else.
func appDataDir(appName string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, strings.Title(appName))
		}
		return filepath.Join(homeDir, strings.Title(appName))
	}
	return filepath.Join(homeDir, "."+appName)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func defaultFlags() *Flags {
	return &Flags{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}
}

// LoadConfig initializes and parses the config using a config file and the
// given command line arguments.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// A missing config file is not an error. Command line options always take
// precedence. The remaining non-flag arguments are returned.
func LoadConfig(args []string) (*Config, []string, error) {
	cfgFlags := defaultFlags()

	// Pre-parse the command line options to see if an alternative config
	// file was specified. Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := *cfgFlags
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	parser := flags.NewParser(cfgFlags, flags.HelpFlag|flags.PassDoubleDash)
	err = flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(preCfg.ConfigFile))
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, errors.Wrapf(err, "error parsing config file %s", preCfg.ConfigFile)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, errors.Wrap(err, usageMessage)
	}

	cfg := &Config{Flags: cfgFlags}
	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, nil, err
	}

	// Namespace the data and log directories per network, as the stored
	// ledger is only valid for the network it was created on.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), cfg.NetParams().Name)
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.NetParams().Name)

	if cfg.ScenarioFile != "" {
		cfg.ScenarioFile = cleanAndExpandPath(cfg.ScenarioFile)
	}

	if cfg.DebugLevel != "show" {
		err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
		if err != nil {
			return nil, nil, errors.Wrap(err, usageMessage)
		}
	}

	return cfg, remainingArgs, nil
}
