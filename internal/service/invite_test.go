package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/service"
	"manageme.app/hub/internal/store"
)

var _ = Describe("InviteService", func() {
	var (
		ctx      context.Context
		mem      *store.Memory
		services *service.Services
		producer *mockProducer
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		var err error
		mem, services, producer, err = newFixture(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Send", func() {
		It("creates a pending invite and queues the delivery email", func() {
			inv, err := services.Invites().Send(ctx, "channel-3", "Dana.Lee@Example.com", "Come help with the mockups", "user-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(inv.ID).To(HavePrefix("inv-"))
			Expect(inv.Status).To(Equal(model.InviteStatusPending))
			Expect(inv.InvitedEmail).To(Equal("dana.lee@example.com"), "addresses are normalized to lower case")
			Expect(inv.ChannelName).To(Equal("design"))

			Expect(producer.enqueued).To(HaveLen(1))
			task := producer.enqueued[0]
			Expect(task.TaskType).To(Equal(queue.TaskTypeInviteEmail))
			Expect(task.InviteID).To(Equal(inv.ID))
			Expect(task.InvitedEmail).To(Equal("dana.lee@example.com"))
			Expect(task.InviteMessage).To(Equal("Come help with the mockups"))
			Expect(task.ChannelName).To(Equal("design"), "the delivery payload is self-contained")
			Expect(task.WorkspaceID).To(Equal("workspace-1"))
		})

		It("rejects a malformed address", func() {
			_, err := services.Invites().Send(ctx, "channel-3", "not-an-email", "", "user-1")

			ve := service.AsValidation(err)
			Expect(ve).NotTo(BeNil())
			Expect(ve.Fields[0].Field).To(Equal("email"))
			Expect(producer.enqueued).To(BeEmpty())
		})

		It("rejects a blank address", func() {
			_, err := services.Invites().Send(ctx, "channel-3", "   ", "", "user-1")
			Expect(service.AsValidation(err)).NotTo(BeNil())
		})

		It("refuses a duplicate while an invite is still pending", func() {
			_, err := services.Invites().Send(ctx, "channel-2", "NewUser@manageme.com", "", "user-1")
			Expect(err).To(MatchError(service.ErrInvitePendingExists))
			Expect(producer.enqueued).To(BeEmpty())
		})

		It("allows re-inviting the same address to a different channel", func() {
			_, err := services.Invites().Send(ctx, "channel-3", "newuser@manageme.com", "", "user-1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("allows re-inviting once the earlier invite is resolved", func() {
			_, err := services.Invites().Reject(ctx, "invite-1")
			Expect(err).NotTo(HaveOccurred())

			_, err = services.Invites().Send(ctx, "channel-2", "newuser@manageme.com", "", "user-1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns ErrChannelNotFound for an unknown channel", func() {
			_, err := services.Invites().Send(ctx, "channel-404", "someone@example.com", "", "user-1")
			Expect(err).To(MatchError(service.ErrChannelNotFound))
		})

		It("surfaces a queue failure but keeps the invite pending", func() {
			producer.enqueueFn = func(context.Context, queue.Task) error {
				return errors.New("stream gone")
			}

			_, err := services.Invites().Send(ctx, "channel-3", "someone@example.com", "", "user-1")
			Expect(err).To(HaveOccurred())

			pending, err := mem.Invites().GetPending(ctx, "channel-3", "someone@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(pending.Status).To(Equal(model.InviteStatusPending))
		})
	})

	Describe("Accept", func() {
		It("resolves the invite and joins an existing user", func() {
			// user-3 is a workspace member but not in development yet.
			inv, err := services.Invites().Send(ctx, "channel-2", "sarah.wilson@manageme.com", "", "user-1")
			Expect(err).NotTo(HaveOccurred())

			accepted, err := services.Invites().Accept(ctx, inv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Status).To(Equal(model.InviteStatusAccepted))

			ch, err := mem.Channels().GetByID(ctx, "channel-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.MemberIDs).To(ContainElement("user-3"))
		})

		It("still resolves when the address has no account yet", func() {
			accepted, err := services.Invites().Accept(ctx, "invite-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Status).To(Equal(model.InviteStatusAccepted))
		})

		It("refuses to resolve twice", func() {
			_, err := services.Invites().Accept(ctx, "invite-1")
			Expect(err).NotTo(HaveOccurred())

			_, err = services.Invites().Accept(ctx, "invite-1")
			Expect(err).To(MatchError(service.ErrInviteResolved))
		})

		It("returns ErrInviteNotFound for an unknown invite", func() {
			_, err := services.Invites().Accept(ctx, "invite-404")
			Expect(err).To(MatchError(service.ErrInviteNotFound))
		})
	})

	Describe("Reject", func() {
		It("resolves the invite without granting membership", func() {
			rejected, err := services.Invites().Reject(ctx, "invite-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(rejected.Status).To(Equal(model.InviteStatusRejected))
		})

		It("cannot flip an accepted invite to rejected", func() {
			_, err := services.Invites().Accept(ctx, "invite-1")
			Expect(err).NotTo(HaveOccurred())

			_, err = services.Invites().Reject(ctx, "invite-1")
			Expect(err).To(MatchError(service.ErrInviteResolved))
		})
	})

	Describe("ListPending", func() {
		It("drops invites as they resolve", func() {
			pending, err := services.Invites().ListPending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].ID).To(Equal("invite-1"))

			_, err = services.Invites().Accept(ctx, "invite-1")
			Expect(err).NotTo(HaveOccurred())

			pending, err = services.Invites().ListPending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(BeEmpty())
		})
	})
})
