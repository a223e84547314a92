package cblog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// maxStackFrames ограничивает глубину захватываемого стека.
const maxStackFrames = 32

// unknownSource подставляется, если стек не удалось получить.
const unknownSource = "unknown"

// CallSite описывает место вызова метода логгера.
type CallSite struct {
	// Source - "<относительный путь> L<строка>" первого кадра вне логгера.
	Source string
	// Stack - оставшиеся кадры, начиная с Source.
	Stack string
}

// Resolver вычисляет место вызова. skip - число кадров над вызывающим
// Resolver кодом, которые нужно пропустить.
type Resolver func(skip int) CallSite

// workDir фиксируется при старте, чтобы пути не менялись после os.Chdir.
var workDir, _ = os.Getwd()

// ResolveCallSite - Resolver по умолчанию.
// skip=0 соответствует функции, вызвавшей ResolveCallSite.
func ResolveCallSite(skip int) CallSite {
	pcs := make([]uintptr, maxStackFrames)
	// 0: runtime.Callers, 1: ResolveCallSite.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return CallSite{Source: unknownSource}
	}

	frames := runtime.CallersFrames(pcs[:n])
	var (
		site  CallSite
		stack strings.Builder
		first = true
	)
	for {
		frame, more := frames.Next()
		if first {
			site.Source = fmt.Sprintf("%s L%d", relativePath(frame.File), frame.Line)
			first = false
		} else {
			stack.WriteByte('\n')
		}
		fmt.Fprintf(&stack, "%s\n\t%s:%d", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	site.Stack = stack.String()
	return site
}

// relativePath возвращает путь относительно рабочей директории.
// Пути вне неё сокращаются до имени файла.
func relativePath(file string) string {
	if file == "" {
		return unknownSource
	}
	if workDir != "" {
		if rel, err := filepath.Rel(workDir, file); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(file)
}
