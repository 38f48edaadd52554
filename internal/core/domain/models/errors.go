package models

import "errors"

var (
	ErrorNoOrderData      = errors.New("no_order_data")
	ErrorOrderNotFound    = errors.New("order_not_found")
	ErrorGenerationFailed = errors.New("generation_failed")
)
