package vmware

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/mo"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
)

// InventoryFinder looks up objects by name across the whole vCenter inventory.
type InventoryFinder struct {
	vc *vim25.Client
}

func NewInventoryFinder(vc *vim25.Client) *InventoryFinder {
	return &InventoryFinder{vc: vc}
}

// FindVMByName searches for a virtual machine by its exact name under the root folder.
//
// Parameters:
//   - ctx: the context for the API request.
//   - vmName: the name of the virtual machine to find.
//
// Returns a ResourceNotFoundError if no virtual machine has that name.
// When several VMs share the name, the first one returned by the server is used.
//
// Example:
//
//	vm, err := finder.FindVMByName(ctx, "my-vm")
//	if err != nil {
//	    return err
//	}
func (f *InventoryFinder) FindVMByName(ctx context.Context, vmName string) (*object.VirtualMachine, error) {
	m := view.NewManager(f.vc)

	v, err := m.CreateContainerView(ctx, f.vc.ServiceContent.RootFolder, []string{"VirtualMachine"}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create container view: %w", err)
	}
	defer func() {
		_ = v.Destroy(ctx)
	}()

	var vms []mo.VirtualMachine
	if err := v.Retrieve(ctx, []string{"VirtualMachine"}, []string{"name"}, &vms); err != nil {
		return nil, fmt.Errorf("failed to list virtual machines: %w", err)
	}

	var matches []mo.VirtualMachine
	for _, vm := range vms {
		if vm.Name == vmName {
			matches = append(matches, vm)
		}
	}

	if len(matches) == 0 {
		return nil, srvErrors.NewVMNotFoundError(vmName)
	}
	if len(matches) > 1 {
		zap.S().Named("vmware").Warnw("several virtual machines share the name, using the first one", "vm", vmName, "count", len(matches))
	}

	return object.NewVirtualMachine(f.vc, matches[0].Self), nil
}
