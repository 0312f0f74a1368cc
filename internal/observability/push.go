package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/push"
)

// Push replaces the job's metric group on a Prometheus Pushgateway with the
// current values of m.
func Push(ctx context.Context, m *Metrics, gatewayURL, job string) error {
	err := push.New(gatewayURL, job).
		Gatherer(m.Gatherer()).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
