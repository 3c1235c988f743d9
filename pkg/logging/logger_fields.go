package logging

import (
	"time"

	"github.com/dd0wney/peacock/pkg/identity"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// ID logs an object id in its short form.
func ID(key string, id identity.ID) Field {
	return String(key, id.Short())
}

const componentKey = "component"

// Component names the subsystem an entry comes from.
func Component(name string) Field {
	return String(componentKey, name)
}

func ControlID(id identity.ID) Field {
	return ID("control_id", id)
}

func BehaviorID(id identity.ID) Field {
	return ID("behavior_id", id)
}

func TargetID(id identity.ID) Field {
	return ID("target_id", id)
}

// EventKind names the input event being routed, e.g. "mouse_down".
func EventKind(kind string) Field {
	return String("event", kind)
}

// Patches is the number of ledger entries registered for one event.
func Patches(n int) Field {
	return Int("patches", n)
}

func Controls(n int) Field {
	return Int("controls", n)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Path(p string) Field {
	return String("path", p)
}
