package backoffice

import (
	"fmt"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

// CallLog records waiter calls from tables. It only grows; staff screens
// read it newest-first.
type CallLog struct {
	mu    sync.Mutex
	calls []*models.WaiterCall
}

func NewCallLog() *CallLog {
	return &CallLog{}
}

func (l *CallLog) Call(table, requestType, message string, at time.Time) models.WaiterCall {
	if requestType == "" {
		requestType = models.WaiterRequestGeneral
	}
	call := models.WaiterCall{
		ID:          cuid.New(),
		TableNumber: table,
		RequestType: requestType,
		Message:     message,
		CalledAt:    at,
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, &call)
	return call
}

// QuickCall sends one of the canned messages.
func (l *CallLog) QuickCall(table, key string, at time.Time) (models.WaiterCall, error) {
	message, ok := models.QuickRequests[key]
	if !ok {
		return models.WaiterCall{}, fmt.Errorf("unknown quick request %q", key)
	}
	return l.Call(table, models.WaiterRequestGeneral, message, at), nil
}

func (l *CallLog) Calls() []models.WaiterCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.WaiterCall, 0, len(l.calls))
	for _, c := range l.calls {
		out = append(out, *c)
	}
	return out
}

// LastCall returns the most recent call from a table, if any.
func (l *CallLog) LastCall(table string) (models.WaiterCall, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.calls) - 1; i >= 0; i-- {
		if l.calls[i].TableNumber == table {
			return *l.calls[i], true
		}
	}
	return models.WaiterCall{}, false
}
