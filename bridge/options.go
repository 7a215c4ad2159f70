package bridge

import (
	"fmt"
	"strconv"

	"github.com/jessevdk/go-flags"
)

// Options holds the bridge command line.
type Options struct {
	ConfigURL string `short:"c" long:"config" description:"bridge config URL (yaml)"`
	Host      string `short:"H" long:"host" description:"gateway listener host"`
	Verbose   bool   `short:"v" long:"verbose" description:"enable debug logging"`

	Positional struct {
		Port *string `positional-arg-name:"port" description:"gateway listening port, 0 picks an ephemeral port"`
	} `positional-args:"yes"`
}

// ParseOptions parses the command line. Help requests come back as a
// *flags.Error with type flags.ErrHelp carrying the usage text.
func ParseOptions(args []string) (*Options, error) {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "nlg-bridge"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return options, nil
}

// Port parses the positional port argument. An empty argument is present,
// not missing, and fails to parse.
func (o *Options) Port() (int, error) {
	if o.Positional.Port == nil {
		return 0, ErrMissingPort
	}
	return ParsePort(*o.Positional.Port)
}

// ParsePort parses a base-10 TCP port; 0 selects an ephemeral port.
func ParsePort(text string) (int, error) {
	port, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidPort, text, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w %q: out of range", ErrInvalidPort, text)
	}
	return port, nil
}
