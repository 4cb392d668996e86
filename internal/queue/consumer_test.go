package queue_test

import (
	"github.com/redis/go-redis/v9"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	It("parses a full invite payload", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type":      "invite_email",
				"attempt":        "2",
				"trace_id":       "abc123",
				"invite_id":      "inv-1",
				"invited_email":  "dana@example.com",
				"invite_message": "Come join us",
				"channel_id":     "channel-3",
				"channel_name":   "design",
				"workspace_id":   "workspace-1",
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1-0"))
		Expect(msg.Task.TaskType).To(Equal(queue.TaskTypeInviteEmail))
		Expect(msg.Task.Attempt).To(Equal(2))
		Expect(msg.Task.TraceID).To(Equal("abc123"))
		Expect(msg.Task.InvitedEmail).To(Equal("dana@example.com"))
		Expect(msg.Task.InviteMessage).To(Equal("Come join us"))
		Expect(msg.Task.ChannelName).To(Equal("design"))
	})

	It("parses a status-change payload", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "2-0",
			Values: map[string]any{
				"task_type":   "task_status_changed",
				"task_id":     "task-1",
				"from_status": "todo",
				"to_status":   "done",
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Task.TaskType).To(Equal(queue.TaskTypeTaskStatusChanged))
		Expect(msg.Task.TaskID).To(Equal("task-1"))
		Expect(msg.Task.FromStatus).To(Equal("todo"))
		Expect(msg.Task.ToStatus).To(Equal("done"))
	})

	It("defaults the attempt to 1", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID:     "3-0",
			Values: map[string]any{"task_type": "invite_email"},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Task.Attempt).To(Equal(1))
	})

	It("rejects a message without a task type", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID:     "4-0",
			Values: map[string]any{"invite_id": "inv-1"},
		})
		Expect(err).To(MatchError(ContainSubstring("missing task_type")))
	})

	It("rejects a message with a garbled attempt", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID: "5-0",
			Values: map[string]any{
				"task_type": "invite_email",
				"attempt":   "many",
			},
		})
		Expect(err).To(MatchError(ContainSubstring("invalid attempt")))
	})
})
