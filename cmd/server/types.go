package main

import "github.com/shopspring/decimal"

type matchRequest struct {
	FeeID string `json:"feeId"`
}

type allocateRequest struct {
	Allocations []allocationSlice `json:"allocations"`
}

type allocationSlice struct {
	FeeID  string          `json:"feeId"`
	Amount decimal.Decimal `json:"amount"`
}

type hideRequest struct {
	Hidden bool `json:"hidden"`
}

type ibanRequest struct {
	IBAN    string  `json:"iban"`
	Status  string  `json:"status"`
	ChildID *string `json:"childId"`
}

type rescanResponse struct {
	Resolved int `json:"resolved"`
}

type errorResponse struct {
	Error string `json:"error"`
}
