package alerting

import "strings"

// RulesConfig содержит конфигурацию правил фильтрации для factory.
type RulesConfig struct {
	// MinSeverity - минимальный уровень severity ("INFO", "WARNING", "CRITICAL").
	MinSeverity string `yaml:"minSeverity" env:"CBL_ALERTING_RULES_MIN_SEVERITY" env-default:"INFO"`

	// ExcludeKeys - ключи записей, для которых НЕ отправляются алерты.
	ExcludeKeys []string `yaml:"excludeKeys" env:"CBL_ALERTING_RULES_EXCLUDE_KEYS" env-separator:","`

	// IncludeKeys - если задан, алерты отправляются ТОЛЬКО для этих ключей.
	IncludeKeys []string `yaml:"includeKeys" env:"CBL_ALERTING_RULES_INCLUDE_KEYS" env-separator:","`

	// ExcludeScopes - области, для которых НЕ отправляются алерты.
	ExcludeScopes []string `yaml:"excludeScopes" env:"CBL_ALERTING_RULES_EXCLUDE_SCOPES" env-separator:","`

	// IncludeScopes - если задан, алерты отправляются ТОЛЬКО для этих областей.
	IncludeScopes []string `yaml:"includeScopes" env:"CBL_ALERTING_RULES_INCLUDE_SCOPES" env-separator:","`

	// Channels - правила для конкретных каналов.
	// ВНИМАНИЕ: правило канала ПОЛНОСТЬЮ ЗАМЕНЯЕТ глобальные правила, а не мержится с ними.
	Channels map[string]ChannelRulesConfig `yaml:"channels"`
}

// ChannelRulesConfig - правила для конкретного канала алертинга.
type ChannelRulesConfig struct {
	MinSeverity   string   `yaml:"minSeverity"`
	ExcludeKeys   []string `yaml:"excludeKeys"`
	IncludeKeys   []string `yaml:"includeKeys"`
	ExcludeScopes []string `yaml:"excludeScopes"`
	IncludeScopes []string `yaml:"includeScopes"`
}

type ruleConfig struct {
	minSeverity   Severity
	excludeKeys   map[string]struct{}
	includeKeys   map[string]struct{}
	excludeScopes map[string]struct{}
	includeScopes map[string]struct{}
}

// RulesEngine оценивает алерты по правилам фильтрации.
type RulesEngine struct {
	global   ruleConfig
	channels map[string]ruleConfig
}

// NewRulesEngine создаёт RulesEngine из конфигурации.
func NewRulesEngine(config RulesConfig) *RulesEngine {
	engine := &RulesEngine{
		global:   buildRuleConfig(config.MinSeverity, config.ExcludeKeys, config.IncludeKeys, config.ExcludeScopes, config.IncludeScopes),
		channels: make(map[string]ruleConfig),
	}

	for name, ch := range config.Channels {
		engine.channels[name] = buildRuleConfig(ch.MinSeverity, ch.ExcludeKeys, ch.IncludeKeys, ch.ExcludeScopes, ch.IncludeScopes)
	}

	return engine
}

// Evaluate проверяет, должен ли алерт быть отправлен в указанный канал.
func (e *RulesEngine) Evaluate(alert Alert, channel string) bool {
	rule := e.global
	if channelRule, ok := e.channels[channel]; ok {
		rule = channelRule
	}

	return evaluateRule(rule, alert)
}

func evaluateRule(rule ruleConfig, alert Alert) bool {
	if alert.Severity < rule.minSeverity {
		return false
	}
	if !matchSet(rule.includeKeys, rule.excludeKeys, alert.Key) {
		return false
	}
	return matchSet(rule.includeScopes, rule.excludeScopes, alert.Scope)
}

// matchSet: include имеет приоритет, exclude проверяется только без include.
func matchSet(include, exclude map[string]struct{}, value string) bool {
	if len(include) > 0 {
		_, ok := include[value]
		return ok
	}
	if len(exclude) > 0 {
		_, ok := exclude[value]
		return !ok
	}
	return true
}

// parseSeverity конвертирует строковое представление severity в Severity.
// Принимает также уровни логгера: WARN и ERROR.
func parseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WARNING", "WARN":
		return SeverityWarning
	case "CRITICAL", "ERROR":
		return SeverityCritical
	default:
		return SeverityInfo
	}
}

func buildRuleConfig(minSeverity string, excludeKeys, includeKeys, excludeScopes, includeScopes []string) ruleConfig {
	return ruleConfig{
		minSeverity:   parseSeverity(minSeverity),
		excludeKeys:   toSet(excludeKeys),
		includeKeys:   toSet(includeKeys),
		excludeScopes: toSet(excludeScopes),
		includeScopes: toSet(includeScopes),
	}
}

// toSet конвертирует slice строк в map для быстрого lookup.
func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}
