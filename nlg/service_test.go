package nlg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/nlgbridge/gateway"
)

func TestService_Register(t *testing.T) {
	srv, err := gateway.New(gateway.WithEntryPoint(New()))
	if !assert.NoError(t, err) {
		return
	}
	for _, method := range srv.Registry().Methods() {
		assert.True(t, method.Builtin, method.Name)
	}
	assert.Equal(t, Name, srv.Info().EntryPoint)
}
