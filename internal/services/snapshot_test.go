package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/kubev2v/vm-snapshots/internal/models"
	"github.com/kubev2v/vm-snapshots/internal/services"
	"github.com/kubev2v/vm-snapshots/mocks/mock_vmware"
	"github.com/kubev2v/vm-snapshots/pkg/console"
	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
	"github.com/kubev2v/vm-snapshots/pkg/vmware"
)

// fakePrompter records the questions asked and replays canned answers.
type fakePrompter struct {
	choice     string
	confirm    bool
	answer     string
	chooseErr  error
	confirmErr error

	chooseCalls  int
	confirmCalls int
	askCalls     int
	choices      []console.Choice
	prompts      []string
}

func (p *fakePrompter) Choose(options []console.Choice, prompt string) (string, error) {
	p.chooseCalls++
	p.choices = options
	p.prompts = append(p.prompts, prompt)
	return p.choice, p.chooseErr
}

func (p *fakePrompter) Confirm(prompt string) (bool, error) {
	p.confirmCalls++
	p.prompts = append(p.prompts, prompt)
	return p.confirm, p.confirmErr
}

func (p *fakePrompter) Ask(prompt string) (string, error) {
	p.askCalls++
	p.prompts = append(p.prompts, prompt)
	return p.answer, nil
}

var created = time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

// duplicateForest creates base -> patched -> patched, the way repeated
// snapshots with the same name end up on a VM.
func duplicateForest() *snapshot.Forest {
	f := snapshot.NewForest()
	base := f.AddRoot(snapshot.Node{Ref: "snapshot-1", Name: "base", CreateTime: created})
	patched, _ := f.AddChild(base, snapshot.Node{Ref: "snapshot-2", Name: "patched", Description: "after patching", CreateTime: created.Add(time.Hour)})
	_, _ = f.AddChild(patched, snapshot.Node{Ref: "snapshot-3", Name: "patched", CreateTime: created.Add(2 * time.Hour)})
	return f
}

func vmInfo(forest *snapshot.Forest, current snapshot.Ref) *models.VMInfo {
	return &models.VMInfo{
		Name:       "web-01",
		GuestOS:    "Red Hat Enterprise Linux 9 (64-bit)",
		PowerState: "poweredOff",
		Snapshots:  forest,
		Current:    current,
	}
}

var _ = Describe("SnapshotService", func() {
	var (
		ctx      context.Context
		ctrl     *gomock.Controller
		operator *mock_vmware.MockVMOperator
		prompter *fakePrompter
		out      *bytes.Buffer
		srv      *services.SnapshotService
		vm       models.VMTarget
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		operator = mock_vmware.NewMockVMOperator(ctrl)
		prompter = &fakePrompter{}
		out = &bytes.Buffer{}
		srv = services.NewSnapshotService(operator, prompter, out)
		vm = models.VMTarget{Moid: "vm-42", Name: "web-01"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Describe", func() {
		It("should print the VM properties with the current snapshot and its description", func() {
			// Arrange
			info := vmInfo(duplicateForest(), "snapshot-2")
			info.IPAddress = "10.0.0.12"
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(info, nil)

			// Act
			err := srv.Describe(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("    Name       : web-01\n"))
			Expect(out.String()).To(ContainSubstring("    Guest      : Red Hat Enterprise Linux 9 (64-bit)\n"))
			Expect(out.String()).To(ContainSubstring("    State      : poweredOff\n"))
			Expect(out.String()).To(ContainSubstring("    Snapshot   : patched (after patching)\n"))
			Expect(out.String()).To(ContainSubstring("    IP         : 10.0.0.12\n"))
		})

		It("should print only the name when the snapshot has no description", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)

			Expect(srv.Describe(ctx, vm)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("    Snapshot   : patched\n"))
			Expect(out.String()).NotTo(ContainSubstring("IP"))
		})

		It("should report none when the VM has no snapshots", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(snapshot.NewForest(), ""), nil)

			Expect(srv.Describe(ctx, vm)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("    Snapshot   : none\n"))
		})

		It("should not fail on a dangling current snapshot pointer", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-99"), nil)

			Expect(srv.Describe(ctx, vm)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("    Snapshot   : unknown\n"))
		})

		It("should propagate info errors", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(nil, errors.New("session expired"))

			err := srv.Describe(ctx, vm)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("session expired"))
		})
	})

	Describe("SelectOperation", func() {
		It("should offer the operations in menu order", func() {
			prompter.choice = string(models.OperationSwitch)

			op, err := srv.SelectOperation()

			Expect(err).NotTo(HaveOccurred())
			Expect(op).To(Equal(models.OperationSwitch))
			Expect(prompter.choices).To(Equal([]console.Choice{
				{Key: "snaps_list", Label: "List Snapshots"},
				{Key: "snaps_create", Label: "Create Snapshot"},
				{Key: "snaps_switch", Label: "Switch to Snapshot"},
				{Key: "snaps_delete", Label: "Delete Snapshot"},
				{Key: "quit", Label: "Quit"},
			}))
			Expect(prompter.prompts).To(Equal([]string{"Choose your operation"}))
		})
	})

	Describe("List", func() {
		It("should print snapshots in depth-first order", func() {
			// Arrange
			f := duplicateForest()
			f.AddRoot(snapshot.Node{Ref: "snapshot-4", Name: "zeta", CreateTime: created})
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(f, "snapshot-1"), nil)

			// Act
			err := srv.List(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			text := out.String()
			Expect(text).To(ContainSubstring("List of Snapshots on web-01:"))
			Expect(strings.Index(text, "base")).To(BeNumerically("<", strings.Index(text, "patched")))
			Expect(strings.Index(text, "patched")).To(BeNumerically("<", strings.Index(text, "zeta")))
			Expect(strings.Count(text, "patched")).To(Equal(2))
			Expect(text).To(ContainSubstring("2024-05-02 08:30:00 UTC"))
		})

		It("should report an empty snapshot set", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(snapshot.NewForest(), ""), nil)

			Expect(srv.List(ctx, vm)).To(Succeed())
			Expect(out.String()).To(Equal("No snapshots stored on the server.\n"))
		})
	})

	Describe("Create", func() {
		// Given a name typed by the user
		// When we create a snapshot
		// Then exactly one create task is issued with fixed memory and quiesce policy
		It("should create the snapshot without memory and without quiescing", func() {
			// Arrange
			prompter.answer = "snap1"
			operator.EXPECT().CreateSnapshot(gomock.Any(), vmware.CreateSnapshotRequest{
				VmMoid:       "vm-42",
				SnapshotName: "snap1",
				Description:  "",
				Memory:       false,
				Quiesce:      false,
			}).Return(nil).Times(1)

			// Act
			err := srv.Create(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(prompter.prompts).To(Equal([]string{"Choose a name for new snapshot: "}))
			Expect(out.String()).To(Equal("Creating snapshot snap1 for VM web-01\nNew snapshot snap1 created successfully.\n"))
		})

		It("should leave name validation to the server", func() {
			prompter.answer = ""
			operator.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any()).
				Return(srvErrors.NewTaskFailedError("create snapshot", errors.New("invalid name")))

			err := srv.Create(ctx, vm)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsTaskFailedError(err)).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("Create Snapshot failed: create snapshot task failed: invalid name"))
			Expect(out.String()).NotTo(ContainSubstring("created successfully"))
		})

		It("should validate privileges first when enabled", func() {
			// Arrange
			srv.WithPrivilegeCheck(true)
			prompter.answer = "snap1"
			gomock.InOrder(
				operator.EXPECT().ValidatePrivileges(gomock.Any(), "vm-42", []string{"VirtualMachine.State.CreateSnapshot"}).Return(nil),
				operator.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any()).Return(nil),
			)

			// Act & Assert
			Expect(srv.Create(ctx, vm)).To(Succeed())
		})

		It("should not create when privileges are missing", func() {
			srv.WithPrivilegeCheck(true)
			prompter.answer = "snap1"
			operator.EXPECT().ValidatePrivileges(gomock.Any(), "vm-42", gomock.Any()).Return(errors.New("missing privileges"))

			err := srv.Create(ctx, vm)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing privileges"))
		})
	})

	Describe("Delete", func() {
		It("should report no snapshots without prompting or removing", func() {
			// Arrange
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(snapshot.NewForest(), ""), nil)

			// Act
			err := srv.Delete(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("No snapshots stored on the server.\n"))
			Expect(prompter.chooseCalls).To(BeZero())
			Expect(prompter.confirmCalls).To(BeZero())
		})

		It("should remove the first snapshot in pre-order for a duplicate name", func() {
			// Arrange
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			prompter.choice = "patched"
			prompter.confirm = true
			operator.EXPECT().RemoveSnapshot(gomock.Any(), vmware.RemoveSnapshotRequest{
				VmMoid:         "vm-42",
				SnapshotRef:    "snapshot-2",
				RemoveChildren: false,
			}).Return(nil).Times(1)

			// Act
			err := srv.Delete(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(prompter.choices).To(Equal([]console.Choice{
				{Key: "base", Label: "base"},
				{Key: "patched", Label: "patched"},
				{Key: "patched", Label: "patched"},
			}))
			Expect(prompter.prompts).To(Equal([]string{
				"Choose snapshot to delete: ",
				"Are you sure you want to delete patched?",
			}))
			Expect(out.String()).To(ContainSubstring("List of available snapshots\n"))
			Expect(out.String()).To(ContainSubstring("Deleting snapshot patched...\npatched deleted successfully.\n"))
		})

		It("should cancel without any remote call on a negative answer", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-1"), nil)
			prompter.choice = "base"
			prompter.confirm = false

			Expect(srv.Delete(ctx, vm)).To(Succeed())
			Expect(out.String()).To(HaveSuffix("Delete operation canceled.\n"))
		})

		It("should report a failed removal", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-1"), nil)
			prompter.choice = "base"
			prompter.confirm = true
			operator.EXPECT().RemoveSnapshot(gomock.Any(), gomock.Any()).
				Return(srvErrors.NewTaskFailedError("remove snapshot", errors.New("file locked")))

			err := srv.Delete(ctx, vm)

			Expect(srvErrors.IsTaskFailedError(err)).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("Delete Snapshot failed"))
			Expect(out.String()).NotTo(ContainSubstring("deleted successfully"))
		})

		It("should propagate selection errors", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-1"), nil)
			prompter.chooseErr = errors.New("failed to read input: EOF")

			err := srv.Delete(ctx, vm)

			Expect(err).To(MatchError(ContainSubstring("EOF")))
			Expect(prompter.confirmCalls).To(BeZero())
		})
	})

	Describe("Switch", func() {
		It("should report no snapshots without prompting", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(snapshot.NewForest(), ""), nil)

			Expect(srv.Switch(ctx, vm)).To(Succeed())
			Expect(out.String()).To(Equal("No snapshots stored on the server.\n"))
			Expect(prompter.chooseCalls).To(BeZero())
		})

		// Given a confirmed switch
		// When the workflow runs
		// Then revert is issued before power on, each exactly once
		It("should revert then power on the VM", func() {
			// Arrange
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			prompter.choice = "base"
			prompter.confirm = true
			gomock.InOrder(
				operator.EXPECT().RevertToSnapshot(gomock.Any(), vmware.RevertToSnapshotRequest{
					VmMoid:      "vm-42",
					SnapshotRef: "snapshot-1",
				}).Return(nil).Times(1),
				operator.EXPECT().PowerOn(gomock.Any(), vmware.PowerOnRequest{VmMoid: "vm-42"}).Return(nil).Times(1),
			)

			// Act
			err := srv.Switch(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(prompter.prompts).To(ContainElement("Are you sure you want to switch to base?"))
			Expect(out.String()).To(HaveSuffix(
				"Switching to snapshot base...\n" +
					"Switched to snapshot base successfully.\n" +
					"VM web-01 powered on successfully.\n"))
		})

		It("should cancel explicitly without any remote call on a negative answer", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			prompter.choice = "patched"
			prompter.confirm = false

			Expect(srv.Switch(ctx, vm)).To(Succeed())
			Expect(out.String()).To(HaveSuffix("Switch operation canceled.\n"))
		})

		It("should not power on when the revert fails", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			prompter.choice = "patched"
			prompter.confirm = true
			operator.EXPECT().RevertToSnapshot(gomock.Any(), vmware.RevertToSnapshotRequest{
				VmMoid:      "vm-42",
				SnapshotRef: "snapshot-2",
			}).Return(srvErrors.NewTaskFailedError("revert to snapshot", errors.New("host unavailable")))

			err := srv.Switch(ctx, vm)

			Expect(srvErrors.IsTaskFailedError(err)).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("Switch to Snapshot failed"))
			Expect(out.String()).NotTo(ContainSubstring("powered on"))
		})

		It("should report a failed power on after a successful revert", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			prompter.choice = "base"
			prompter.confirm = true
			gomock.InOrder(
				operator.EXPECT().RevertToSnapshot(gomock.Any(), gomock.Any()).Return(nil),
				operator.EXPECT().PowerOn(gomock.Any(), gomock.Any()).
					Return(srvErrors.NewTaskFailedError("power on", errors.New("no license"))),
			)

			err := srv.Switch(ctx, vm)

			Expect(err).To(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("Switched to snapshot base successfully."))
			Expect(out.String()).To(ContainSubstring("power on task failed: no license"))
		})
	})

	Describe("Run", func() {
		It("should do nothing on quit", func() {
			Expect(srv.Run(ctx, models.OperationQuit, vm)).To(Succeed())
			Expect(out.String()).To(BeEmpty())
		})

		It("should reject an unknown operation", func() {
			Expect(srv.Run(ctx, models.Operation("reboot"), vm)).To(MatchError(ContainSubstring("unknown operation")))
		})

		It("should dispatch to list", func() {
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(snapshot.NewForest(), ""), nil)

			Expect(srv.Run(ctx, models.OperationList, vm)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("No snapshots stored on the server."))
		})
	})

	Describe("with the terminal console", func() {
		It("should drive a full delete from typed answers", func() {
			// Arrange
			term := console.New(strings.NewReader("x\n3\nYes\n"), out)
			srv = services.NewSnapshotService(operator, term, out)
			operator.EXPECT().Info(gomock.Any(), "vm-42").Return(vmInfo(duplicateForest(), "snapshot-3"), nil)
			operator.EXPECT().RemoveSnapshot(gomock.Any(), vmware.RemoveSnapshotRequest{
				VmMoid:      "vm-42",
				SnapshotRef: "snapshot-2",
			}).Return(nil)

			// Act
			err := srv.Delete(ctx, vm)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("Invalid selection"))
			Expect(out.String()).To(ContainSubstring("Are you sure you want to delete patched? (yes/no) "))
		})
	})
})
