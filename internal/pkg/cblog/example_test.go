package cblog_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

type printAlerter struct{}

func (printAlerter) Alert(_ context.Context, req cblog.AlertRequest) error {
	fmt.Println("alert:", req.Level, req.Key, req.Options.Scope)
	return nil
}

func ExampleLogger_Extend() {
	logger := cblog.New()
	if err := logger.Extend(printAlerter{}); err != nil {
		fmt.Println(err)
		return
	}

	logger.Error("payment_failed",
		map[string]any{"order": 42},
		cblog.Options{Alert: true, Scope: "billing"},
		errors.New("card declined"))
}

func ExampleLogger_Info() {
	logger := cblog.New()

	// Опции можно передать map-ой: ts=false убирает время.
	logger.Info("cache_warmed", map[string]any{"entries": 1024}, map[string]any{"ts": false})
}
