package xlog

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Foreground colors.
const (
	colorRed termColor = iota + 31
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func init() {
	// Disable linter unused-symbol-warnings
	_ = colorGreen
}

// termColor represents a text color.
type termColor uint8

// Add adds the coloring to the given string.
func (c termColor) Add(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", uint8(c), s)
}

func parseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func encodeLevel(l zapcore.Level) (string, termColor) {
	// 文本和颜色大部分从zap中沿用而来
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG", colorMagenta
	case zapcore.InfoLevel:
		return "INFO", colorBlue
	case zapcore.WarnLevel:
		return "WARN", colorYellow
	case zapcore.ErrorLevel:
		return "ERROR", colorRed
	default:
		return fmt.Sprintf("LEVEL(%d)", l), colorRed
	}
}

// 自定义LevelEncoder
func customLevelEncoder(withColor bool) func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		lvlName, color := encodeLevel(l)
		if withColor {
			lvlName = color.Add(lvlName)
		}
		enc.AppendString(lvlName)
	}
}
