package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Kargones/cblogger/internal/pkg/apperrors"
	"github.com/Kargones/cblogger/internal/pkg/cblog"

	"github.com/ilyakaznacheev/cleanenv"
)

// RecordInput - запись, которую нужно вывести, заданная переменными окружения.
type RecordInput struct {
	Level string `env:"CBL_LEVEL" env-default:"info"`
	Key   string `env:"CBL_KEY"`

	// Data - JSON значение. Пустая строка означает отсутствие данных.
	Data string `env:"CBL_DATA"`

	// Error - текст ошибки. Пустая строка означает отсутствие ошибки.
	Error string `env:"CBL_ERROR"`

	Alert       bool   `env:"CBL_ALERT"`
	Stack       bool   `env:"CBL_STACK"`
	NoTimestamp bool   `env:"CBL_NO_TS"`
	Scope       string `env:"CBL_SCOPE"`
	Depth       int    `env:"CBL_DEPTH"`

	// TraceID - идентификатор запроса. Пустой означает отсутствие.
	TraceID string `env:"CBL_TRACE_ID"`
}

// Record - разобранный RecordInput, готовый для cblog.Logger.Log.
type Record struct {
	Level   cblog.Level
	Key     string
	Data    any
	Options cblog.Options
	Err     error
	TraceID string
}

// Args возвращает аргументы вызова логгера в порядке данные, опции, ошибка.
func (r Record) Args() []any {
	if r.Err != nil {
		return []any{r.Data, r.Options, r.Err}
	}
	return []any{r.Data, r.Options}
}

// LoadRecordInput читает RecordInput из окружения.
func LoadRecordInput() (*RecordInput, error) {
	var in RecordInput
	if err := cleanenv.ReadEnv(&in); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInputInvalid,
			"ошибка чтения параметров записи", err)
	}
	return &in, nil
}

// Parse проверяет RecordInput и строит Record.
func (in *RecordInput) Parse() (Record, error) {
	level, err := cblog.ParseLevel(in.Level)
	if err != nil {
		return Record{}, apperrors.NewAppError(apperrors.ErrInputInvalid,
			fmt.Sprintf("недопустимый уровень %q", in.Level), err)
	}
	key := strings.TrimSpace(in.Key)
	if key == "" {
		return Record{}, apperrors.NewAppError(apperrors.ErrInputInvalid,
			"CBL_KEY обязателен", nil)
	}
	if in.Depth < 0 {
		return Record{}, apperrors.NewAppError(apperrors.ErrInputInvalid,
			fmt.Sprintf("CBL_DEPTH не может быть отрицательным: %d", in.Depth), nil)
	}

	rec := Record{
		Level: level,
		Key:   key,
		Options: cblog.Options{
			NoTimestamp: in.NoTimestamp,
			Stack:       in.Stack,
			Alert:       in.Alert,
			Scope:       in.Scope,
			Depth:       in.Depth,
		},
		TraceID: strings.TrimSpace(in.TraceID),
	}

	if in.Data != "" {
		if err := json.Unmarshal([]byte(in.Data), &rec.Data); err != nil {
			return Record{}, apperrors.NewAppError(apperrors.ErrInputInvalid,
				"CBL_DATA должен быть валидным JSON", err)
		}
	}
	if in.Error != "" {
		rec.Err = errors.New(in.Error)
	}
	return rec, nil
}
