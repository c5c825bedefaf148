package acl

import "context"

// Name identifies the backing API in readiness output. It is the name the
// shared httpclient was built with.
func (c *TodoClient) Name() string {
	return c.req.client.Name()
}

// HealthCheck reports the backing API as seen by the shared circuit
// breaker. No request is sent, so a failing API cannot keep the breaker
// from recovering.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.req.client.HealthCheck(ctx)
}
