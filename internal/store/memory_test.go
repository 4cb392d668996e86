package store_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

var _ = Describe("Memory", func() {
	var (
		ctx context.Context
		mem *store.Memory
	)

	BeforeEach(func() {
		ctx = context.Background()
		mem = store.NewMemory()
		Expect(store.SeedDemoData(ctx, mem)).To(Succeed())
	})

	expectIntegrity := func(err error, ref string) {
		GinkgoHelper()
		var ie *store.IntegrityError
		Expect(errors.As(err, &ie)).To(BeTrue(), "expected an integrity error, got %v", err)
		Expect(ie.Ref).To(Equal(ref))
	}

	Describe("workspaces", func() {
		It("refuses a workspace whose owner is not a member", func() {
			err := mem.Workspaces().Create(ctx, &model.Workspace{
				ID: "ws-x", Name: "X", OwnerID: "user-1", MemberIDs: []string{"user-2"},
			})
			expectIntegrity(err, "owner_id")
		})

		It("refuses a workspace with no members", func() {
			err := mem.Workspaces().Create(ctx, &model.Workspace{
				ID: "ws-x", Name: "X", OwnerID: "user-1",
			})
			expectIntegrity(err, "member_ids")
		})
	})

	Describe("channels", func() {
		It("refuses a channel in a missing workspace", func() {
			err := mem.Channels().Create(ctx, &model.Channel{
				ID: "ch-x", Name: "x", WorkspaceID: "workspace-404", MemberIDs: []string{"user-1"},
			})
			expectIntegrity(err, "workspace_id")
		})

		It("refuses channel members who are not workspace members", func() {
			// user-2 is not in the personal workspace.
			err := mem.Channels().Create(ctx, &model.Channel{
				ID: "ch-x", Name: "x", WorkspaceID: "workspace-2", MemberIDs: []string{"user-1", "user-2"},
			})
			expectIntegrity(err, "member_ids")
		})

		It("refuses adding a non-workspace member to a channel", func() {
			err := mem.Channels().AddMember(ctx, "channel-5", "user-2")
			expectIntegrity(err, "member_ids")
		})

		It("adding an existing member is idempotent", func() {
			Expect(mem.Channels().AddMember(ctx, "channel-1", "user-2")).To(Succeed())

			ch, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).NotTo(HaveOccurred())

			count := 0
			for _, id := range ch.MemberIDs {
				if id == "user-2" {
					count++
				}
			}
			Expect(count).To(Equal(1))
		})
	})

	Describe("task links", func() {
		It("applies a link batch all or nothing", func() {
			err := mem.Channels().AddLinkedTasks(ctx, "channel-1", []string{"task-2", "task-404"})
			expectIntegrity(err, "linked_task_ids")

			ch, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.LinkedTaskIDs).To(BeEmpty())
		})

		It("refuses linking a task to its home channel", func() {
			err := mem.Channels().AddLinkedTasks(ctx, "channel-1", []string{"task-1"})
			expectIntegrity(err, "linked_task_ids")
		})

		It("deduplicates repeated links", func() {
			Expect(mem.Channels().AddLinkedTasks(ctx, "channel-1", []string{"task-2"})).To(Succeed())
			Expect(mem.Channels().AddLinkedTasks(ctx, "channel-1", []string{"task-2"})).To(Succeed())

			ch, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.LinkedTaskIDs).To(Equal([]string{"task-2"}))
		})
	})

	Describe("tasks", func() {
		It("refuses a task whose workspace disagrees with its channel", func() {
			err := mem.Tasks().Create(ctx, &model.Task{
				ID: "task-x", Title: "x", Status: model.TaskStatusTodo,
				ChannelID: "channel-1", WorkspaceID: "workspace-2",
				CreatedAt: time.Now().UTC(),
			})
			expectIntegrity(err, "workspace_id")
		})

		It("refuses an unknown status", func() {
			_, err := mem.Tasks().SetStatus(ctx, "task-1", model.TaskStatus("blocked"))
			expectIntegrity(err, "status")
		})

		It("lists a board as home tasks then linked tasks", func() {
			Expect(mem.Channels().AddLinkedTasks(ctx, "channel-3", []string{"task-1"})).To(Succeed())

			board, err := mem.Tasks().ListBoard(ctx, "channel-3")
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, len(board))
			for i, t := range board {
				ids[i] = t.ID
			}
			Expect(ids).To(Equal([]string{"task-4", "task-5", "task-1"}))
		})
	})

	Describe("invites", func() {
		It("resolves an invite exactly once", func() {
			_, err := mem.Invites().Resolve(ctx, "invite-1", model.InviteStatusAccepted)
			Expect(err).NotTo(HaveOccurred())

			_, err = mem.Invites().Resolve(ctx, "invite-1", model.InviteStatusRejected)
			Expect(err).To(MatchError(store.ErrInviteResolved))
		})

		It("refuses resolving back to pending", func() {
			_, err := mem.Invites().Resolve(ctx, "invite-1", model.InviteStatusPending)
			expectIntegrity(err, "status")
		})

		It("matches pending invites case-insensitively", func() {
			inv, err := mem.Invites().GetPending(ctx, "channel-2", "NEWUSER@manageme.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(inv.ID).To(Equal("invite-1"))
		})

		It("refuses an invite whose workspace disagrees with its channel", func() {
			err := mem.Invites().Create(ctx, &model.Invite{
				ID: "inv-x", ChannelID: "channel-1", WorkspaceID: "workspace-2",
				InvitedEmail: "x@example.com", Status: model.InviteStatusPending,
			})
			expectIntegrity(err, "workspace_id")
		})
	})

	Describe("workspace deletion", func() {
		It("cascades to channels, tasks, messages and invites", func() {
			Expect(mem.Workspaces().Delete(ctx, "workspace-1")).To(Succeed())

			_, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).To(MatchError(store.ErrNotFound))
			_, err = mem.Tasks().GetByID(ctx, "task-1")
			Expect(err).To(MatchError(store.ErrNotFound))
			_, err = mem.Messages().GetByID(ctx, "msg-1")
			Expect(err).To(MatchError(store.ErrNotFound))
			_, err = mem.Invites().GetByID(ctx, "invite-1")
			Expect(err).To(MatchError(store.ErrNotFound))

			// The other workspace is untouched.
			_, err = mem.Channels().GetByID(ctx, "channel-5")
			Expect(err).NotTo(HaveOccurred())
			_, err = mem.Tasks().GetByID(ctx, "task-7")
			Expect(err).NotTo(HaveOccurred())
		})

		It("unlinks deleted tasks from surviving boards", func() {
			// Link a team task onto the personal board, then delete the
			// team workspace.
			Expect(mem.Channels().AddLinkedTasks(ctx, "channel-5", []string{"task-1"})).To(Succeed())
			Expect(mem.Workspaces().Delete(ctx, "workspace-1")).To(Succeed())

			ch, err := mem.Channels().GetByID(ctx, "channel-5")
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.LinkedTaskIDs).To(BeEmpty())

			board, err := mem.Tasks().ListBoard(ctx, "channel-5")
			Expect(err).NotTo(HaveOccurred())
			for _, t := range board {
				Expect(t.WorkspaceID).To(Equal("workspace-2"))
			}
		})

		It("returns ErrNotFound for an unknown workspace", func() {
			Expect(mem.Workspaces().Delete(ctx, "workspace-404")).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("isolation", func() {
		It("hands out copies, not live references", func() {
			ch, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).NotTo(HaveOccurred())
			ch.MemberIDs = append(ch.MemberIDs[:0], "user-9")

			again, err := mem.Channels().GetByID(ctx, "channel-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(again.MemberIDs).NotTo(ContainElement("user-9"))
		})
	})
})
