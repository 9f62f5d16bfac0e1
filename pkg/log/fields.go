package log

// Field is one structured attribute attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Str returns a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 returns an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err returns an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags log output with a component name.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }

// Any returns a field holding an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }
