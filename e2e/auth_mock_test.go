//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"testing"

	authpb "github.com/vibast-solutions/ms-go-auth/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// The checkout service under test is started with AUTH_SERVICE_GRPC_ADDR
// pointing at this listener.
const authMockAddr = "0.0.0.0:38085"

// e2eKeys resolves the API keys shared with the running service, letting the
// environment override the defaults.
var e2eKeys = struct {
	caller   string
	noAccess string
	app      string
}{
	caller:   envOrDefault("CHECKOUT_CALLER_API_KEY", "checkout-caller-key"),
	noAccess: envOrDefault("CHECKOUT_NO_ACCESS_API_KEY", "checkout-no-access-key"),
	app:      envOrDefault("CHECKOUT_APP_API_KEY", "checkout-app-api-key"),
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func checkoutCallerAPIKey() string   { return e2eKeys.caller }
func checkoutNoAccessAPIKey() string { return e2eKeys.noAccess }

// accessDirectory answers internal access checks from a fixed grant table.
type accessDirectory struct {
	authpb.UnimplementedAuthServiceServer

	grants map[string]*authpb.ValidateInternalAccessResponse
}

func newAccessDirectory() *accessDirectory {
	return &accessDirectory{
		grants: map[string]*authpb.ValidateInternalAccessResponse{
			e2eKeys.caller: {
				ServiceName:   "storefront-gateway",
				AllowedAccess: []string{"checkout-service", "cart-service", "orders-service"},
			},
			e2eKeys.noAccess: {
				ServiceName:   "storefront-gateway",
				AllowedAccess: []string{"cart-service"},
			},
		},
	}
}

func (d *accessDirectory) ValidateInternalAccess(ctx context.Context, req *authpb.ValidateInternalAccessRequest) (*authpb.ValidateInternalAccessResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	if values := md.Get("x-api-key"); len(values) == 0 || strings.TrimSpace(values[0]) != e2eKeys.app {
		return nil, status.Error(codes.Unauthenticated, "checkout service did not identify itself")
	}

	grant, ok := d.grants[strings.TrimSpace(req.GetApiKey())]
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
	return grant, nil
}

var authDirectory = newAccessDirectory()

func TestMain(m *testing.M) {
	listener, err := net.Listen("tcp", authMockAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auth directory listen on %s: %v\n", authMockAddr, err)
		os.Exit(1)
	}

	server := grpc.NewServer()
	authpb.RegisterAuthServiceServer(server, authDirectory)
	go func() {
		_ = server.Serve(listener)
	}()

	code := m.Run()
	server.GracefulStop()
	os.Exit(code)
}
