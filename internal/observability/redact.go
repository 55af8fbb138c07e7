package observability

import (
	"go.uber.org/zap/zapcore"
)

// Redaction is the marker written in place of scrubbed field values.
const Redaction = "***"

// PIIFields are the field keys whose values never reach log output.
var PIIFields = []string{"name", "email", "phone", "password", "new_password"}

// redactingCore wraps a zapcore.Core and replaces the values of
// personally identifying fields with a fixed marker before encoding.
type redactingCore struct {
	zapcore.Core
	keys map[string]struct{}
}

// NewRedactingCore returns a core that scrubs the given field keys from
// every entry written through it.
func NewRedactingCore(core zapcore.Core, keys ...string) zapcore.Core {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return &redactingCore{Core: core, keys: set}
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(c.redact(fields)), keys: c.keys}
}

func (c *redactingCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *redactingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, c.redact(fields))
}

func (c *redactingCore) redact(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	copy(out, fields)
	for i, field := range out {
		if _, ok := c.keys[field.Key]; ok {
			out[i] = zapcore.Field{Key: field.Key, Type: zapcore.StringType, String: Redaction}
		}
	}
	return out
}
