package logger

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger - build a zap logger for the given environment
func NewLogger(env string) (*zap.Logger, error) {
	if strings.EqualFold(env, "production") {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
