package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/descore/des"
	"github.com/opd-ai/descore/limits"
)

// CLI configuration
type CLIConfig struct {
	encrypt    bool
	decrypt    bool
	blockText  string
	blockHex   string
	keyText    string
	keyHex     string
	passphrase string
	salt       string
	format     string
	trace      bool
	logLevel   string
	logFile    string
	help       bool
}

// Request is a validated single-block operation.
type Request struct {
	Direction des.Direction
	Block     des.Block
	Key       des.Key
	Format    string
	Trace     bool
}

var validFormats = []string{"hex", "text", "bits"}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	config := &CLIConfig{}

	// Direction
	fs.BoolVar(&config.encrypt, "e", false, "Encrypt the block")
	fs.BoolVar(&config.decrypt, "d", false, "Decrypt the block")

	// Block material
	fs.StringVar(&config.blockText, "block", "", "Block as exactly 8 ASCII characters")
	fs.StringVar(&config.blockHex, "block-hex", "", "Block as 16 hex digits, optional 0x prefix")

	// Key material
	fs.StringVar(&config.keyText, "key", "", "Key as exactly 8 ASCII characters")
	fs.StringVar(&config.keyHex, "key-hex", "", "Key as 16 hex digits, optional 0x prefix")
	fs.StringVar(&config.passphrase, "passphrase", "", "Derive the key from a passphrase (requires -salt)")
	fs.StringVar(&config.salt, "salt", "", "Salt for -passphrase")

	// Output
	fs.StringVar(&config.format, "format", "hex", "Output format (hex, text, bits)")
	fs.BoolVar(&config.trace, "trace", false, "Print the state after every stage")

	// Logging configuration
	fs.StringVar(&config.logLevel, "log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")
	fs.StringVar(&config.logFile, "log-file", "", "Log file path (default: stderr)")

	// Help
	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Single-block DES")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Encrypts or decrypts exactly one 64-bit block with one 64-bit key.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s (-e|-d) (-block TEXT|-block-hex HEX) (-key TEXT|-key-hex HEX|-passphrase P -salt S) [options]\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s -e -block-hex 0x123456ABCD132536 -key-hex 0xAABB09182736CCDD\n", fs.Name())
	fmt.Fprintf(w, "  %s -d -block-hex 0xC0B7A8D05F3A829C -key-hex 0xAABB09182736CCDD\n", fs.Name())
	fmt.Fprintf(w, "  %s -e -block abcdefgh -key secret!! -trace\n", fs.Name())
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.encrypt == config.decrypt {
		return fmt.Errorf("exactly one of -e or -d must be given")
	}

	if countSet(config.blockText, config.blockHex) != 1 {
		return fmt.Errorf("exactly one of -block or -block-hex must be given")
	}

	if countSet(config.keyText, config.keyHex, config.passphrase) != 1 {
		return fmt.Errorf("exactly one of -key, -key-hex or -passphrase must be given")
	}

	if config.passphrase != "" && config.salt == "" {
		return fmt.Errorf("-passphrase requires -salt")
	}

	if config.salt != "" && config.passphrase == "" {
		return fmt.Errorf("-salt is only valid with -passphrase")
	}

	if !contains(validFormats, config.format) {
		return fmt.Errorf("invalid format %q: must be one of %s", config.format, strings.Join(validFormats, ", "))
	}

	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// createRequest converts the CLI configuration to a block operation.
func createRequest(config *CLIConfig) (*Request, error) {
	req := &Request{
		Direction: des.Encrypt,
		Format:    config.format,
		Trace:     config.trace,
	}
	if config.decrypt {
		req.Direction = des.Decrypt
	}

	block, err := parseBlock(config)
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	req.Block = block

	key, err := parseKey(config)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	req.Key = key

	return req, nil
}

func parseBlock(config *CLIConfig) (des.Block, error) {
	if config.blockHex != "" {
		v, err := des.ParseHex(config.blockHex)
		if err != nil {
			return 0, err
		}
		return des.BlockFromUint64(v), nil
	}
	return des.ParseBlock(config.blockText)
}

func parseKey(config *CLIConfig) (des.Key, error) {
	switch {
	case config.keyHex != "":
		v, err := des.ParseHex(config.keyHex)
		if err != nil {
			return 0, err
		}
		return des.KeyFromUint64(v), nil
	case config.passphrase != "":
		return des.KeyFromPassphrase([]byte(config.passphrase), []byte(config.salt))
	default:
		return des.ParseKey(config.keyText)
	}
}

// setupLogging configures the global logger from the CLI configuration.
// The returned function releases the log file, if one was opened.
func setupLogging(config *CLIConfig, stderr io.Writer) (func(), error) {
	level, err := logrus.ParseLevel(config.logLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)

	if config.logFile == "" {
		logrus.SetOutput(stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(config.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logrus.SetOutput(f)
	return func() {
		logrus.SetOutput(stderr)
		f.Close()
	}, nil
}

// formatBlock renders a block in the requested output format.
func formatBlock(b des.Block, format string) string {
	switch format {
	case "text":
		return fmt.Sprintf("%q", b.Text())
	case "bits":
		return b.Bits()
	default:
		return b.Hex()
	}
}

// execute runs the request and writes the result (and trace, if requested) to w.
func execute(req *Request, w io.Writer) des.Block {
	var trace des.TraceFunc
	if req.Trace {
		trace = func(stage des.Stage, round int, state des.Block) {
			label := stage.String()
			if stage == des.StageRound {
				label = fmt.Sprintf("round %2d", round)
			}
			fmt.Fprintf(w, "%-11s %s\n", label, formatBlock(state, req.Format))
		}
	}

	c := des.NewCipherWithTrace(req.Key, trace)
	out := c.Process(req.Block, req.Direction)

	logrus.WithFields(des.ProcessFields(req.Direction, limits.Rounds, "ok")).
		WithFields(des.KeyFields(req.Key)).
		Info("Block processed")

	fmt.Fprintln(w, formatBlock(out, req.Format))
	return out
}

// run is the testable body of main; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("desblock", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cliConfig, err := parseCLIFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
			return 0
		}
		fmt.Fprintf(stderr, "Flag error: %v\n", err)
		return 2
	}

	if cliConfig.help {
		printUsage(stdout, fs)
		return 0
	}

	if err := validateCLIConfig(cliConfig); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}

	cleanup, err := setupLogging(cliConfig, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Logging error: %v\n", err)
		return 1
	}
	defer cleanup()

	req, err := createRequest(cliConfig)
	if err != nil {
		fmt.Fprintf(stderr, "Input error: %v\n", err)
		return 1
	}

	execute(req, stdout)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
