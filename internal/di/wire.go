//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/cblogger/internal/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideAlerter,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideCrashReporter,
	ProvideCBLog,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт App через Wire DI.
// Принимает Config, загруженный через config.Load().
//
// Пример использования:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    os.Exit(constants.ExitConfigFailure)
//	}
//	app, err := di.InitializeApp(cfg)
//	if err != nil {
//	    os.Exit(constants.ExitConfigFailure)
//	}
//	defer app.Shutdown(context.Background())
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
