package benchmark

import (
	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Values)
	core.PutEntry(e)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
