package launcher

import (
	"io"
	"time"

	"github.com/viant/nlgbridge"
)

// Options configures a launched bridge process.
type Options struct {
	Command string   `yaml:"command" json:"command" short:"C" long:"command" description:"bridge command"`
	Args    []string `yaml:"arguments" json:"arguments" short:"A" long:"arguments" description:"bridge arguments preceding the port"`
	// Env is appended to the current environment.
	Env []string `yaml:"env" json:"env"`
	// Host is the address used to reach the gateway.
	Host string `yaml:"host" json:"host"`
	// Transport is "sse" (default) or "streamable".
	Transport    string        `yaml:"transport" json:"transport"`
	StartTimeout time.Duration `yaml:"startTimeout" json:"startTimeout"`
	StopTimeout  time.Duration `yaml:"stopTimeout" json:"stopTimeout"`
	// Stderr receives the child's logs; nil discards them.
	Stderr io.Writer `yaml:"-" json:"-"`
}

func (o *Options) Init() {
	if o.Host == "" {
		o.Host = "127.0.0.1"
	}
	if o.Transport == "" {
		o.Transport = nlgbridge.TransportSSE
	}
	if o.StartTimeout <= 0 {
		o.StartTimeout = 10 * time.Second
	}
	if o.StopTimeout <= 0 {
		o.StopTimeout = 5 * time.Second
	}
}
