// Package cblog реализует консольный логгер с точкой расширения для алертинга.
//
// Каждая запись собирается из упорядоченных сегментов (ключ, данные, ошибка,
// место вызова, время, стек) и пишется одним вызовом Write: DEBUG и INFO в stdout,
// WARN и ERROR в stderr.
//
// Логгер не знает конкретных бэкендов. Во время работы к нему можно подключить:
//   - Alerter - вызывается, если запись запрошена с Options.Alert;
//   - CrashReporter - получает каждую ERROR запись с ошибкой.
//
// Пример использования:
//
//	log := cblog.Default()
//	if err := log.Extend(bridge); err != nil {
//	    return err
//	}
//	log.Info("job_started", map[string]any{"job": name})
//	log.Error("job_failed", map[string]any{"job": name}, cblog.Options{Alert: true}, err)
//
// Ошибки самого алертера никогда не возвращаются вызывающему коду: они
// превращаются во вторичные ERROR записи alert_error_response и alert_error_thrown.
package cblog
