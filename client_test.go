package nlgbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientOptions_Endpoint(t *testing.T) {
	var testCases = []struct {
		description string
		options     *ClientOptions
		expect      string
		expectErr   bool
	}{
		{description: "default sse", options: &ClientOptions{URL: "http://127.0.0.1:25333/"}, expect: "http://127.0.0.1:25333/sse"},
		{description: "streamable", options: &ClientOptions{URL: "http://127.0.0.1:25333", Transport: TransportStreamable}, expect: "http://127.0.0.1:25333/rpc"},
		{description: "custom uri", options: &ClientOptions{URL: "http://host:1", SSEURI: "/events"}, expect: "http://host:1/events"},
		{description: "unsupported", options: &ClientOptions{URL: "http://host:1", Transport: "stdio"}, expectErr: true},
	}
	for _, testCase := range testCases {
		testCase.options.Init()
		actual, err := testCase.options.Endpoint()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestNewTransport_RequiresURL(t *testing.T) {
	_, err := NewTransport(context.Background(), &ClientOptions{})
	assert.Error(t, err)
	_, err = NewTransport(context.Background(), nil)
	assert.Error(t, err)
}
