package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MessageHandler", func() {
	var (
		ctx context.Context
		a   *api
	)

	BeforeEach(func() {
		ctx = context.Background()
		a = newAPI(ctx)
	})

	Describe("GET /api/v1/channels/:id/messages", func() {
		It("returns the transcript oldest first", func() {
			w := a.do(http.MethodGet, "/api/v1/channels/channel-1/messages", "user-1", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			messages := decode(w)["messages"].([]any)
			Expect(messages).To(HaveLen(3))
			Expect(messages[0].(map[string]any)["id"]).To(Equal("msg-1"))
		})

		It("hides transcripts of channels the caller is not in", func() {
			w := a.do(http.MethodGet, "/api/v1/channels/channel-4/messages", "user-2", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /api/v1/channels/:id/messages", func() {
		It("posts as the caller with denormalized author fields", func() {
			w := a.do(http.MethodPost, "/api/v1/channels/channel-1/messages", "user-3", map[string]any{
				"content": "Shipping the mockups today",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			Expect(resp["user_id"]).To(Equal("user-3"))
			Expect(resp["user_name"]).To(Equal("Sarah Wilson"))
			Expect(resp["user_avatar"]).To(Equal("SW"))
		})

		It("reads as not-found when posting from outside the channel", func() {
			w := a.do(http.MethodPost, "/api/v1/channels/channel-2/messages", "user-3", map[string]any{
				"content": "hi",
			})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects an empty body at the binding layer", func() {
			w := a.do(http.MethodPost, "/api/v1/channels/channel-1/messages", "user-1", map[string]any{
				"content": "",
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PATCH /api/v1/messages/:id", func() {
		It("lets the author edit their message", func() {
			w := a.do(http.MethodPatch, "/api/v1/messages/msg-1", "user-2", map[string]any{
				"content": "Revised notes",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["content"]).To(Equal("Revised notes"))
			Expect(resp["edited"]).To(BeTrue())
		})

		It("refuses edits by anyone else", func() {
			w := a.do(http.MethodPatch, "/api/v1/messages/msg-1", "user-1", map[string]any{
				"content": "hijacked",
			})
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 404 for an unknown message", func() {
			w := a.do(http.MethodPatch, "/api/v1/messages/msg-404", "user-1", map[string]any{
				"content": "x",
			})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
