// Package constants содержит константы, общие для cmd и внутренних пакетов cblogger.
package constants

// AppName - имя приложения в логах, метриках и User-Agent.
const AppName = "cblogger"

// Version - версия сборки. Переопределяется при сборке:
//
//	go build -ldflags "-X github.com/Kargones/cblogger/internal/constants.Version=1.2.0"
var Version = "dev"

// Коды завершения cmd/cblogger.
const (
	// ExitOK - запись выведена.
	ExitOK = 0
	// ExitInvalidInput - параметры записи (CBL_KEY, CBL_LEVEL, CBL_DATA) невалидны.
	ExitInvalidInput = 2
	// ExitConfigFailure - конфигурация не загружена или невалидна.
	ExitConfigFailure = 5
)

// Таймауты завершения.
const (
	// ShutdownTimeoutSeconds - время на отправку метрик и span-ов перед выходом.
	ShutdownTimeoutSeconds = 10
)
