package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error. A nil error is logged as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op names the operation a log line belongs to.
func Op(opn string) slog.Attr {
	return slog.String("op", opn)
}

// Division names the console area a log line belongs to.
func Division(name string) slog.Attr {
	return slog.String("division", name)
}
