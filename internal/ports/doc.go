// Package ports declares the interfaces between the gateway's layers.
// Service ports (TodoService, AuthService) are implemented in internal/app
// and called by HTTP handlers. Client ports (TodoClient, AuthClient) are
// implemented by the backing API adapter and called by the services.
package ports
