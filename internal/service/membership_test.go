package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/internal/service"
)

var _ = Describe("MembershipService", func() {
	var (
		ctx      context.Context
		services *service.Services
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		_, services, _, err = newFixture(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("VisibleWorkspaces", func() {
		It("returns only workspaces the user is a member of", func() {
			workspaces, err := services.Memberships().VisibleWorkspaces(ctx, "user-2")

			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(HaveLen(1))
			Expect(workspaces[0].ID).To(Equal("workspace-1"))
		})

		It("returns both workspaces for the common owner", func() {
			workspaces, err := services.Memberships().VisibleWorkspaces(ctx, "user-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(HaveLen(2))
		})
	})

	Describe("VisibleChannels", func() {
		It("hides channels the user does not belong to, public or not", func() {
			channels, err := services.Memberships().VisibleChannels(ctx, "user-3", "workspace-1")
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, len(channels))
			for i, ch := range channels {
				ids[i] = ch.ID
			}
			// user-3 is in general and design, but not development
			// (public) nor my-tasks (private).
			Expect(ids).To(ConsistOf("channel-1", "channel-3"))
		})

		It("shows a private channel to its member", func() {
			channels, err := services.Memberships().VisibleChannels(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, len(channels))
			for i, ch := range channels {
				ids[i] = ch.ID
			}
			Expect(ids).To(ContainElement("channel-4"))
		})
	})

	Describe("VisibleChannel", func() {
		It("resolves a channel for its member", func() {
			ch, err := services.Memberships().VisibleChannel(ctx, "user-1", "channel-4")
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.Name).To(Equal("my-tasks"))
		})

		It("reports a non-member channel as not visible", func() {
			_, err := services.Memberships().VisibleChannel(ctx, "user-2", "channel-4")
			Expect(err).To(MatchError(service.ErrNotVisible))
		})

		It("reports an unknown channel as not found", func() {
			_, err := services.Memberships().VisibleChannel(ctx, "user-1", "channel-404")
			Expect(err).To(MatchError(service.ErrChannelNotFound))
		})
	})

	Describe("GroupedChannels", func() {
		It("splits visible channels into public and private", func() {
			public, private, err := services.Memberships().GroupedChannels(ctx, "user-1", "workspace-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(public).To(HaveLen(3))
			Expect(private).To(HaveLen(1))
			Expect(private[0].ID).To(Equal("channel-4"))
		})
	})
})

var _ = Describe("SelectionService", func() {
	var (
		ctx      context.Context
		services *service.Services
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		_, services, _, err = newFixture(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	It("defaults to an empty selection on the messages tab", func() {
		sel := services.Selections().Get(ctx, "user-5")
		Expect(sel.WorkspaceID).To(BeEmpty())
		Expect(sel.ActiveTab).To(Equal(service.TabMessages))
	})

	Describe("SelectWorkspace", func() {
		It("auto-selects the first visible channel", func() {
			sel, err := services.Selections().SelectWorkspace(ctx, "user-4", "workspace-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(sel.WorkspaceID).To(Equal("workspace-1"))
			Expect(sel.ChannelID).To(Equal("channel-1"))
			Expect(sel.ActiveTab).To(Equal(service.TabMessages))
		})

		It("refuses a workspace the user is not a member of", func() {
			_, err := services.Selections().SelectWorkspace(ctx, "user-2", "workspace-2")
			Expect(err).To(MatchError(service.ErrNotVisible))
		})
	})

	Describe("SelectChannel", func() {
		It("resets the active tab to messages", func() {
			_, err := services.Selections().SelectWorkspace(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			_, err = services.Selections().SetTab(ctx, "user-1", service.TabTasks)
			Expect(err).NotTo(HaveOccurred())

			sel, err := services.Selections().SelectChannel(ctx, "user-1", "channel-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(sel.ChannelID).To(Equal("channel-2"))
			Expect(sel.ActiveTab).To(Equal(service.TabMessages))
		})

		It("refuses a channel the user is not a member of", func() {
			_, err := services.Selections().SelectChannel(ctx, "user-2", "channel-4")
			Expect(err).To(MatchError(service.ErrNotVisible))
		})
	})

	Describe("SetTab", func() {
		It("switches between messages and tasks", func() {
			sel, err := services.Selections().SetTab(ctx, "user-1", service.TabTasks)
			Expect(err).NotTo(HaveOccurred())
			Expect(sel.ActiveTab).To(Equal(service.TabTasks))
		})

		It("rejects an unknown tab", func() {
			_, err := services.Selections().SetTab(ctx, "user-1", service.ChannelTab("settings"))
			Expect(service.AsValidation(err)).NotTo(BeNil())
		})
	})
})
