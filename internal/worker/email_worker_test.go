package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailWorker_MalformedPayloadNotRetried(t *testing.T) {
	w := NewEmailWorker(nil, "alerts@example.com")
	// returning an error would push the job to the DLQ; garbage can't be
	// fixed by retrying, so it must be dropped
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{not json`)))
}

func TestEmailWorker_NoRecipientSkips(t *testing.T) {
	w := NewEmailWorker(nil, "")
	payload, err := json.Marshal(LowStockJobPayload{Name: "Carrots", CurrentStock: 2})
	require.NoError(t, err)
	assert.NoError(t, w.Process(context.Background(), payload))
}

func TestDispatcher_NilIsNoOp(t *testing.T) {
	var d *Dispatcher
	assert.NoError(t, d.EnqueueLowStockAlert(context.Background(), LowStockJobPayload{Name: "Kale"}))
	assert.NoError(t, NewDispatcher(nil).EnqueueLowStockAlert(context.Background(), LowStockJobPayload{Name: "Kale"}))
}
