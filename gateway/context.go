package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/viant/jsonrpc"
)

type activeContext struct {
	context.Context
	context.CancelFunc
}

func newActiveContext(parent context.Context) (*activeContext, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &activeContext{Context: ctx, CancelFunc: cancel}, ctx
}

type cancelledParams struct {
	RequestId jsonrpc.RequestId `json:"requestId"`
	Reason    *string           `json:"reason,omitempty"`
}

// requestKey identifies an in-flight request; numeric and string ids stay distinct.
func requestKey(id jsonrpc.RequestId) string {
	switch actual := id.(type) {
	case string:
		return "s:" + actual
	case nil:
		return ""
	case float64:
		return "n:" + strconv.FormatFloat(actual, 'f', -1, 64)
	default:
		return "n:" + fmt.Sprint(actual)
	}
}

// Cancel handles a cancellation notification for an in-flight request.
func (h *Handler) Cancel(_ context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params cancelledParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	switch params.RequestId.(type) {
	case string, float64:
	default:
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	h.cancelOperation(requestKey(params.RequestId))
	return nil
}
