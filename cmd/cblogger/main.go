// Package main содержит точку входа cblogger: вывод одной записи лога,
// заданной переменными окружения CBL_*, с алертингом, трейсингом и метриками
// из конфигурации.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kargones/cblogger/internal/config"
	"github.com/Kargones/cblogger/internal/constants"
	"github.com/Kargones/cblogger/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run выполняет приложение и возвращает exit code.
// Диагностика запуска пишется в errOut.
func run(ctx context.Context, args []string, errOut io.Writer) int {
	if len(args) > 0 && (args[0] == "version" || args[0] == "--version") {
		_, _ = fmt.Fprintf(errOut, "%s %s\n", constants.AppName, constants.Version)
		return constants.ExitOK
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Ошибка загрузки конфигурации: %v\n", err)
		return constants.ExitConfigFailure
	}

	input, err := config.LoadRecordInput()
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Ошибка чтения записи: %v\n", err)
		return constants.ExitInvalidInput
	}
	rec, err := input.Parse()
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Ошибка чтения записи: %v\n", err)
		return constants.ExitInvalidInput
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Ошибка инициализации: %v\n", err)
		return constants.ExitConfigFailure
	}

	app.Emit(ctx, rec)

	// Ошибки отправки метрик и span-ов не влияют на результат: запись уже выведена.
	_ = app.Shutdown(context.WithoutCancel(ctx))
	return constants.ExitOK
}
