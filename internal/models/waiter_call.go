package models

import "time"

const (
	WaiterRequestGeneral   = "general"
	WaiterRequestBill      = "bill"
	WaiterRequestHelp      = "help"
	WaiterRequestComplaint = "complaint"
)

// QuickRequests are the canned messages guests can send without typing.
var QuickRequests = map[string]string{
	"water":   "Could we get more water, please?",
	"napkins": "We need napkins, please.",
	"cutlery": "Could you bring extra cutlery?",
	"bill":    "We would like to ask for the bill, please.",
	"menu":    "Could you bring the menu again?",
}

type WaiterCall struct {
	ID          string    `json:"id"`
	TableNumber string    `json:"table_number"`
	RequestType string    `json:"request_type"`
	Message     string    `json:"message"`
	CalledAt    time.Time `json:"called_at"`
}
