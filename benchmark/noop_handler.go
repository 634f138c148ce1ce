package benchmark

import (
	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) CanRecycleEntry() bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
