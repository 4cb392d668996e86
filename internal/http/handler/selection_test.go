package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SelectionHandler", func() {
	var (
		ctx context.Context
		a   *api
	)

	BeforeEach(func() {
		ctx = context.Background()
		a = newAPI(ctx)
	})

	It("starts with an empty selection on the messages tab", func() {
		w := a.do(http.MethodGet, "/api/v1/selection", "user-1", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		// workspace_id and channel_id are omitted while nothing is selected.
		Expect(resp).NotTo(HaveKey("workspace_id"))
		Expect(resp).NotTo(HaveKey("channel_id"))
		Expect(resp["active_tab"]).To(Equal("messages"))
	})

	It("selecting a workspace auto-selects its first visible channel", func() {
		w := a.do(http.MethodPut, "/api/v1/selection/workspace", "user-4", map[string]any{
			"workspace_id": "workspace-1",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["workspace_id"]).To(Equal("workspace-1"))
		Expect(resp["channel_id"]).To(Equal("channel-1"))
		Expect(resp["active_tab"]).To(Equal("messages"))
	})

	It("hides non-member workspaces behind 404", func() {
		w := a.do(http.MethodPut, "/api/v1/selection/workspace", "user-2", map[string]any{
			"workspace_id": "workspace-2",
		})
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("switching channels resets the tab to messages", func() {
		w := a.do(http.MethodPut, "/api/v1/selection/workspace", "user-1", map[string]any{
			"workspace_id": "workspace-1",
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		w = a.do(http.MethodPut, "/api/v1/selection/tab", "user-1", map[string]any{"tab": "tasks"})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["active_tab"]).To(Equal("tasks"))

		w = a.do(http.MethodPut, "/api/v1/selection/channel", "user-1", map[string]any{
			"channel_id": "channel-2",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["channel_id"]).To(Equal("channel-2"))
		Expect(resp["active_tab"]).To(Equal("messages"))
	})

	It("rejects an unknown tab at the binding layer", func() {
		w := a.do(http.MethodPut, "/api/v1/selection/tab", "user-1", map[string]any{"tab": "files"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
