package cblog

type alerterSlot struct {
	alerter Alerter
}

type crashSlot struct {
	reporter CrashReporter
}

// Attach подключает расширение указанного вида.
// Объект проверяется на соответствие интерфейсу вида, занятый слот не перезаписывается.
func (l *Logger) Attach(kind ExtensionKind, ext any) error {
	if isNil(ext) {
		return ErrInvalidExtension
	}
	switch kind {
	case KindAlerter:
		a, ok := ext.(Alerter)
		if !ok {
			return ErrInvalidExtension
		}
		return l.Extend(a)
	case KindCrashReporter:
		r, ok := ext.(CrashReporter)
		if !ok {
			return ErrInvalidExtension
		}
		return l.AttachCrashReporter(r)
	default:
		return ErrInvalidExtension
	}
}

// Extend подключает алертер.
// Возвращает ErrAlreadyExtended, если алертер уже подключён.
func (l *Logger) Extend(a Alerter) error {
	if isNil(a) {
		return ErrInvalidExtension
	}
	if !l.alerter.CompareAndSwap(nil, &alerterSlot{alerter: a}) {
		return ErrAlreadyExtended
	}
	return nil
}

// Unextend отключает алертер. Без подключённого алертера возвращает ErrMethodNotAllowed.
func (l *Logger) Unextend() error {
	if l.alerter.Swap(nil) == nil {
		return ErrMethodNotAllowed
	}
	return nil
}

// AttachCrashReporter подключает crash reporter. Отключить его нельзя.
func (l *Logger) AttachCrashReporter(r CrashReporter) error {
	if isNil(r) {
		return ErrInvalidExtension
	}
	if !l.crash.CompareAndSwap(nil, &crashSlot{reporter: r}) {
		return ErrAlreadyExtended
	}
	return nil
}

// Extended сообщает, подключён ли алертер.
func (l *Logger) Extended() bool {
	return l.alerter.Load() != nil
}

// HasCrashReporter сообщает, подключён ли crash reporter.
func (l *Logger) HasCrashReporter() bool {
	return l.crash.Load() != nil
}
