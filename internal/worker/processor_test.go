package worker_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/worker"
)

type mockMailer struct {
	mu     sync.Mutex
	sendFn func(ctx context.Context, email worker.Email) error
	sent   []worker.Email
}

func (m *mockMailer) Send(ctx context.Context, email worker.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	if m.sendFn != nil {
		return m.sendFn(ctx, email)
	}
	return nil
}

var _ = Describe("Processor", func() {
	var (
		ctx       context.Context
		mailer    *mockMailer
		processor *worker.Processor
	)

	BeforeEach(func() {
		ctx = context.Background()
		mailer = &mockMailer{}
		processor = worker.NewProcessor(mailer, worker.ProcessorConfig{
			DashboardURL: "https://hub.example.com",
		})
	})

	Describe("invite emails", func() {
		It("builds the email entirely from the task payload", func() {
			err := processor.Process(ctx, queue.Task{
				TaskType:      queue.TaskTypeInviteEmail,
				InviteID:      "inv-42",
				InvitedEmail:  "dana@example.com",
				InviteMessage: "Come join us",
				ChannelID:     "channel-3",
				ChannelName:   "design",
				WorkspaceID:   "workspace-1",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(HaveLen(1))

			email := mailer.sent[0]
			Expect(email.To).To(Equal("dana@example.com"))
			Expect(email.Subject).To(Equal("You've been invited to #design"))
			Expect(email.Body).To(ContainSubstring("Come join us"))
			Expect(email.Body).To(ContainSubstring("https://hub.example.com/invites/inv-42"))
		})

		It("omits the personal note when there is none", func() {
			err := processor.Process(ctx, queue.Task{
				TaskType:     queue.TaskTypeInviteEmail,
				InviteID:     "inv-42",
				InvitedEmail: "dana@example.com",
				ChannelName:  "design",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent[0].Body).NotTo(ContainSubstring("\n\n\n"))
		})

		It("propagates mailer failures", func() {
			mailer.sendFn = func(context.Context, worker.Email) error {
				return worker.ErrDeliveryFailed
			}

			err := processor.Process(ctx, queue.Task{
				TaskType:     queue.TaskTypeInviteEmail,
				InvitedEmail: "dana@example.com",
				ChannelName:  "design",
			})
			Expect(err).To(MatchError(worker.ErrDeliveryFailed))
		})
	})

	It("handles status-change tasks without touching the mailer", func() {
		err := processor.Process(ctx, queue.Task{
			TaskType:   queue.TaskTypeTaskStatusChanged,
			TaskID:     "task-1",
			FromStatus: "todo",
			ToStatus:   "done",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(mailer.sent).To(BeEmpty())
	})

	It("rejects unknown task types", func() {
		err := processor.Process(ctx, queue.Task{TaskType: "mystery"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown task type"))
	})
})

var _ = Describe("SimulatedMailer", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("delivers to ordinary addresses", func() {
		m := worker.NewSimulatedMailer(0)
		Expect(m.Send(ctx, worker.Email{To: "dana@example.com"})).To(Succeed())
	})

	It("bounces addresses tagged +bounce", func() {
		m := worker.NewSimulatedMailer(0)
		err := m.Send(ctx, worker.Email{To: "dana+bounce@example.com"})
		Expect(err).To(MatchError(worker.ErrDeliveryFailed))
	})

	It("gives up when the context is cancelled mid-delivery", func() {
		m := worker.NewSimulatedMailer(time.Hour)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := m.Send(cctx, worker.Email{To: "dana@example.com"})
		Expect(err).To(MatchError(context.Canceled))
	})
})
