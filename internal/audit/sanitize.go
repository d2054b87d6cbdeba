package audit

import (
	"encoding/json"
	"strings"
)

const (
	redacted  = "***REDACTED***"
	truncated = "...[TRUNCATED]"
)

// chaves que nunca vão para o log, independente da configuração
var alwaysSensitive = []string{
	"password",
	"senha",
	"token",
	"access_token",
	"refresh_token",
	"secret",
	"api_key",
	"authorization",
	"cpf",
	"cnpj",
	"card_number",
	"cvv",
	"credit_card",
}

type Sanitizer struct {
	sensitive map[string]struct{}
	maxLen    int
}

func NewSanitizer(extra []string, maxLen int) *Sanitizer {
	s := &Sanitizer{
		sensitive: make(map[string]struct{}, len(alwaysSensitive)+len(extra)),
		maxLen:    maxLen,
	}
	for _, k := range alwaysSensitive {
		s.sensitive[k] = struct{}{}
	}
	for _, k := range extra {
		s.sensitive[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}
	return s
}

// Metadata serializa o payload já sem campos sensíveis.
func (s *Sanitizer) Metadata(v any) string {
	if v == nil {
		return ""
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return ""
	}

	out, err := json.Marshal(s.clean(generic))
	if err != nil {
		return ""
	}
	return string(out)
}

func (s *Sanitizer) clean(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if s.isSensitive(k) {
				t[k] = redacted
				continue
			}
			t[k] = s.clean(val)
		}
		return t
	case []any:
		for i := range t {
			t[i] = s.clean(t[i])
		}
		return t
	case string:
		return s.truncate(t)
	default:
		return v
	}
}

func (s *Sanitizer) isSensitive(key string) bool {
	_, ok := s.sensitive[strings.ToLower(key)]
	return ok
}

func (s *Sanitizer) truncate(v string) string {
	if s.maxLen <= 0 || len(v) <= s.maxLen {
		return v
	}
	return v[:s.maxLen] + truncated
}
