package vmware

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/types"
)

// ValidatePrivileges checks that the logged in user holds every privilege on the VM.
func (m *VMManager) ValidatePrivileges(ctx context.Context, vmMoid string, privileges []string) error {
	return m.ValidateUserPrivilegesOnEntity(ctx, m.vmFromMoid(vmMoid).Reference(), privileges, m.username)
}

// ValidateUserPrivilegesOnEntity checks whether the specified user has all the required privileges
// on a given vSphere entity.
//
// Returns an error if:
//   - fetching the user's privileges fails,
//   - no privileges are returned for the user,
//   - or the user is missing any of the required privileges.
func (m *VMManager) ValidateUserPrivilegesOnEntity(ctx context.Context, ref types.ManagedObjectReference, requiredPrivileges []string, userName string) error {
	authManager := object.NewAuthorizationManager(m.gc.Client)

	results, err := authManager.FetchUserPrivilegeOnEntities(ctx, []types.ManagedObjectReference{ref}, userName)
	if err != nil {
		return fmt.Errorf("failed to fetch user privileges: %w", err)
	}

	if len(results) == 0 {
		return fmt.Errorf("no privileges returned for user %s", userName)
	}

	granted := make(map[string]bool, len(results[0].Privileges))
	for _, p := range results[0].Privileges {
		granted[p] = true
	}

	var missing []string
	for _, req := range requiredPrivileges {
		if !granted[req] {
			missing = append(missing, req)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("user %s is missing required privileges on %s: %v", userName, ref.Value, missing)
	}

	return nil
}
