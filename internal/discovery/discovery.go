// Package discovery enumerates resources per AWS service. Every
// discoverer follows the same contract: exhaust pagination, never fail
// the caller on a provider error (log a warning and return an empty
// sequence instead), and resolve only the fields its record shape
// declares. Partial inventories beat total failure.
package discovery

import (
	"github.com/provision-iam/aws-inspector/internal/logger"

	"go.uber.org/zap"
)

// run executes one service discoverer, converting a provider error into
// a logged warning and an empty result. The returned slice is never nil.
func run[T any](service string, fn func() ([]T, error)) []T {
	out, err := fn()
	if err != nil {
		logger.GetLogger().Warn("Discovery failed",
			zap.String("service", service), zap.Error(err))
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}
