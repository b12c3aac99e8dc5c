package vmware

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/session"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
)

// ServerURL turns the server address given on the command line into a vSphere SDK URL.
// A bare host or host:port gets the https scheme and the /sdk path.
func ServerURL(server string) string {
	server = strings.TrimSpace(server)
	if !strings.Contains(server, "://") {
		server = "https://" + server
	}

	u, err := url.Parse(server)
	if err != nil {
		return server
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/sdk"
	}
	return u.String()
}

// NewVsphereClient creates and authenticates a new vSphere client connection to a vCenter server.
//
// Parameters:
//   - ctx: the context for the API request.
//   - vcenterUrl: the URL of the vCenter server (e.g., "https://vcenter.example.com/sdk").
//   - username: the username for authentication.
//   - password: the password for authentication.
//   - insecure: if true, skips TLS certificate verification.
//
// Every failure is returned as a VCenterError so callers can tell a
// connection problem from the errors of later operations.
func NewVsphereClient(ctx context.Context, vcenterUrl, username, password string, insecure bool) (*govmomi.Client, error) {
	u, err := soap.ParseURL(vcenterUrl)
	if err != nil {
		return nil, srvErrors.NewVCenterError(fmt.Errorf("failed to parse vCenter URL: %w", err))
	}

	u.User = url.UserPassword(username, password)

	soapClient := soap.NewClient(u, insecure)

	vimClient, err := vim25.NewClient(ctx, soapClient)
	if err != nil {
		return nil, srvErrors.NewVCenterError(fmt.Errorf("failed to create vim25 client: %w", err))
	}

	client := &govmomi.Client{
		Client:         vimClient,
		SessionManager: session.NewManager(vimClient),
	}

	if err := client.Login(ctx, u.User); err != nil {
		return nil, srvErrors.NewVCenterError(err)
	}

	zap.S().Named("vmware").Debugw("logged in to vCenter", "host", u.Host, "user", username)

	return client, nil
}
